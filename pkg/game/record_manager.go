package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlayerRecords 跨局保留的个人纪录
// 只保存纪录，不保存对局状态
type PlayerRecords struct {
	BestScore       int     `yaml:"bestScore"`
	BestCombo       int     `yaml:"bestCombo"`
	LongestSurvival float64 `yaml:"longestSurvival"` // 秒
	RunsPlayed      int     `yaml:"runsPlayed"`
}

// RunResult 一局结束时的结果
type RunResult struct {
	Score    int
	Combo    int
	Survival float64
}

// RecordManager 纪录管理器
// 负责纪录的加载、更新和保存
type RecordManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	records      *PlayerRecords
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "player"
)

// NewRecordManager 创建纪录管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存纪录）
//
// 返回：
//   - *RecordManager: 纪录管理器实例（加载失败时使用空纪录）
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		records:      &PlayerRecords{},
	}

	if err := rm.Load(); err != nil {
		// 加载失败不是致命错误，使用空纪录
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm
}

// Load 从 gdata 加载纪录
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (rm *RecordManager) Load() error {
	rm.records = &PlayerRecords{}

	if rm.gdataManager == nil {
		return nil
	}

	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded PlayerRecords
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = &loaded
	log.Printf("[RecordManager] Records loaded: best score %d", loaded.BestScore)
	return nil
}

// Save 保存纪录到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	log.Printf("[RecordManager] Records saved")
	return nil
}

// Submit 记录一局结果，返回是否刷新了最高分
// 注意：仅修改内存中的纪录，需调用 Save() 方法持久化
func (rm *RecordManager) Submit(result RunResult) bool {
	rm.records.RunsPlayed++
	if result.Combo > rm.records.BestCombo {
		rm.records.BestCombo = result.Combo
	}
	if result.Survival > rm.records.LongestSurvival {
		rm.records.LongestSurvival = result.Survival
	}
	if result.Score > rm.records.BestScore {
		rm.records.BestScore = result.Score
		return true
	}
	return false
}

// GetRecords 获取当前纪录
func (rm *RecordManager) GetRecords() PlayerRecords {
	return *rm.records
}
