package components

// InputIntent 每帧解析后的输入意图
// 由宿主层从键盘等设备解析得到，核心模拟只读取这些布尔标志
type InputIntent struct {
	MoveUp, MoveDown, MoveLeft, MoveRight bool
	Fire                                  bool
	SelectWeapon1                         bool
	SelectWeapon2                         bool
	SelectWeapon3                         bool
	Interact                              bool
}
