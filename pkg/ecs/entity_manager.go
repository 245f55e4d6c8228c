// Package ecs 提供按实体类别划分的实体存储（Arena）
//
// 每种实体类别（敌人、弹丸、道具……）各自持有一个 Arena。
// 实体通过稳定的 EntityID 句柄引用；删除只做标记，帧末统一清理，
// 因此同一帧内创建或销毁实体不会使正在进行的遍历失效。
package ecs

// EntityID 是实体的句柄
// 低 32 位为槽位索引，高 32 位为槽位代数；0 保留为无效 ID
type EntityID uint64

// InvalidEntity 无效实体句柄
const InvalidEntity EntityID = 0

func makeID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index))
}

func (id EntityID) index() uint32 { return uint32(id) }
func (id EntityID) gen() uint32   { return uint32(id >> 32) }

type slot[T any] struct {
	value  T
	gen    uint32
	alive  bool
	marked bool // 已标记删除，等待 RemoveMarkedEntities
}

// Arena 管理同一类别的所有实体
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	live              int
}

// NewArena 创建一个新的 Arena 实例
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots:             make([]slot[T], 0, capacity),
		free:              make([]uint32, 0),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// Create 创建新实体并返回句柄和指向存储值的指针
// 指针在下一次 Create 之前有效，跨帧保存时请使用句柄
func (a *Arena[T]) Create(value T) (EntityID, *T) {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		// 代数从 1 开始，保证句柄不为 0
		a.slots = append(a.slots, slot[T]{gen: 1})
	}

	s := &a.slots[index]
	s.value = value
	s.alive = true
	s.marked = false
	a.live++
	return makeID(index, s.gen), &s.value
}

func (a *Arena[T]) lookup(id EntityID) *slot[T] {
	if id == InvalidEntity {
		return nil
	}
	index := id.index()
	if int(index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[index]
	if !s.alive || s.gen != id.gen() {
		return nil
	}
	return s
}

// Get 获取存活实体；已标记删除或句柄过期时返回 false
func (a *Arena[T]) Get(id EntityID) (*T, bool) {
	s := a.lookup(id)
	if s == nil || s.marked {
		return nil, false
	}
	return &s.value, true
}

// IsAlive 检查句柄是否指向存活（未标记删除）的实体
func (a *Arena[T]) IsAlive(id EntityID) bool {
	_, ok := a.Get(id)
	return ok
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记或句柄无效时为空操作，返回 false
func (a *Arena[T]) DestroyEntity(id EntityID) bool {
	s := a.lookup(id)
	if s == nil || s.marked {
		return false
	}
	s.marked = true
	a.live--
	a.entitiesToDestroy = append(a.entitiesToDestroy, id)
	return true
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回清理数量
// 被清理的槽位代数加一，旧句柄随之失效
func (a *Arena[T]) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range a.entitiesToDestroy {
		s := a.lookup(id)
		if s == nil {
			continue
		}
		var zero T
		s.value = zero
		s.alive = false
		s.marked = false
		s.gen++
		if s.gen == 0 {
			s.gen = 1
		}
		a.free = append(a.free, id.index())
		removed++
	}
	a.entitiesToDestroy = a.entitiesToDestroy[:0] // 清空切片
	return removed
}

// Each 按槽位顺序遍历存活实体
// 遍历中新建的实体本轮不会被访问；遍历中被标记删除的实体会被跳过
func (a *Arena[T]) Each(fn func(id EntityID, value *T)) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		s := &a.slots[i]
		if !s.alive || s.marked {
			continue
		}
		fn(makeID(uint32(i), s.gen), &s.value)
	}
}

// IDs 返回当前所有存活实体句柄的快照（槽位顺序）
func (a *Arena[T]) IDs() []EntityID {
	ids := make([]EntityID, 0, a.live)
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive && !s.marked {
			ids = append(ids, makeID(uint32(i), s.gen))
		}
	}
	return ids
}

// Len 返回存活（未标记删除）实体数量
func (a *Arena[T]) Len() int {
	return a.live
}

// Clear 删除所有实体，所有旧句柄失效
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			var zero T
			s.value = zero
			s.alive = false
			s.marked = false
			s.gen++
			if s.gen == 0 {
				s.gen = 1
			}
			a.free = append(a.free, uint32(i))
		}
	}
	a.entitiesToDestroy = a.entitiesToDestroy[:0]
	a.live = 0
}
