package ecs

// EntityID 是实体的唯一标识符
// 同一次模拟中所有种类的实体共享一个编号序列
type EntityID uint64

// IDAllocator 分配单调递增的实体ID
// 每次模拟开始时调用 Reset() 归零，ID 不会被复用
type IDAllocator struct {
	nextID uint64
}

// NewIDAllocator 创建一个从 0 开始计数的分配器
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next 返回当前编号并递增计数器
// 第一次调用返回 0
func (a *IDAllocator) Next() EntityID {
	id := EntityID(a.nextID)
	a.nextID++
	return id
}

// Peek 返回下一次 Next() 将要分配的编号，不修改计数器
func (a *IDAllocator) Peek() EntityID {
	return EntityID(a.nextID)
}

// Reset 将计数器归零（模拟重新开始时调用）
func (a *IDAllocator) Reset() {
	a.nextID = 0
}
