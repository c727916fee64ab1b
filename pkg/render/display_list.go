package render

import "image/color"

// OpKind 绘制指令类型
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpBeginPath
	OpArc
	OpMoveTo
	OpLineTo
	OpClosePath
	OpSetFillColor
	OpSetGlobalAlpha
	OpFill
	OpFillRect
	OpTranslate
	OpRotate
)

// String 返回指令名称
func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpBeginPath:
		return "beginPath"
	case OpArc:
		return "arc"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpClosePath:
		return "closePath"
	case OpSetFillColor:
		return "fillStyle"
	case OpSetGlobalAlpha:
		return "globalAlpha"
	case OpFill:
		return "fill"
	case OpFillRect:
		return "fillRect"
	case OpTranslate:
		return "translate"
	case OpRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Op 一条绘制指令
// Args 的含义取决于 Kind（例如 Arc 为 x, y, radius, start, end）
type Op struct {
	Kind  OpKind
	Args  [5]float64
	Color color.Color
}

// DisplayList 记录绘制指令的 Surface 实现
//
// 模拟在 ebiten 的 Update 阶段绘制到 DisplayList，Draw 阶段再通过 Replay 回放到屏幕。
// 同时记录 Save/Restore 的嵌套深度，便于检查绘制是否平衡。
type DisplayList struct {
	width, height float64
	ops           []Op
	depth         int
	maxDepth      int
	unbalanced    bool
}

// NewDisplayList 创建指定画布尺寸的指令列表
func NewDisplayList(width, height float64) *DisplayList {
	return &DisplayList{width: width, height: height}
}

// SetSize 更新画布尺寸（窗口大小变化时调用）
func (d *DisplayList) SetSize(width, height float64) {
	d.width = width
	d.height = height
}

// Reset 清空已记录的指令，保留画布尺寸
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
	d.depth = 0
	d.maxDepth = 0
	d.unbalanced = false
}

// Ops 返回已记录的指令
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Count 返回指定类型指令的数量
func (d *DisplayList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Depth 返回当前 Save/Restore 嵌套深度，平衡时为 0
func (d *DisplayList) Depth() int {
	return d.depth
}

// MaxDepth 返回记录期间出现过的最大嵌套深度
func (d *DisplayList) MaxDepth() int {
	return d.maxDepth
}

// Balanced 报告是否每个 Restore 都有对应的 Save 且当前深度为 0
func (d *DisplayList) Balanced() bool {
	return !d.unbalanced && d.depth == 0
}

// Replay 将记录的指令按顺序回放到 dst
func (d *DisplayList) Replay(dst Surface) {
	for _, op := range d.ops {
		a := op.Args
		switch op.Kind {
		case OpSave:
			dst.Save()
		case OpRestore:
			dst.Restore()
		case OpBeginPath:
			dst.BeginPath()
		case OpArc:
			dst.Arc(a[0], a[1], a[2], a[3], a[4])
		case OpMoveTo:
			dst.MoveTo(a[0], a[1])
		case OpLineTo:
			dst.LineTo(a[0], a[1])
		case OpClosePath:
			dst.ClosePath()
		case OpSetFillColor:
			dst.SetFillColor(op.Color)
		case OpSetGlobalAlpha:
			dst.SetGlobalAlpha(a[0])
		case OpFill:
			dst.Fill()
		case OpFillRect:
			dst.FillRect(a[0], a[1], a[2], a[3])
		case OpTranslate:
			dst.Translate(a[0], a[1])
		case OpRotate:
			dst.Rotate(a[0])
		}
	}
}

func (d *DisplayList) record(kind OpKind, args ...float64) {
	op := Op{Kind: kind}
	copy(op.Args[:], args)
	d.ops = append(d.ops, op)
}

func (d *DisplayList) Save() {
	d.depth++
	if d.depth > d.maxDepth {
		d.maxDepth = d.depth
	}
	d.record(OpSave)
}

func (d *DisplayList) Restore() {
	if d.depth == 0 {
		d.unbalanced = true
	} else {
		d.depth--
	}
	d.record(OpRestore)
}

func (d *DisplayList) BeginPath() { d.record(OpBeginPath) }

func (d *DisplayList) Arc(x, y, radius, startAngle, endAngle float64) {
	d.record(OpArc, x, y, radius, startAngle, endAngle)
}

func (d *DisplayList) MoveTo(x, y float64) { d.record(OpMoveTo, x, y) }
func (d *DisplayList) LineTo(x, y float64) { d.record(OpLineTo, x, y) }
func (d *DisplayList) ClosePath()          { d.record(OpClosePath) }

func (d *DisplayList) SetFillColor(c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpSetFillColor, Color: c})
}

func (d *DisplayList) SetGlobalAlpha(alpha float64) { d.record(OpSetGlobalAlpha, alpha) }
func (d *DisplayList) Fill()                        { d.record(OpFill) }

func (d *DisplayList) FillRect(x, y, width, height float64) {
	d.record(OpFillRect, x, y, width, height)
}

func (d *DisplayList) Translate(x, y float64) { d.record(OpTranslate, x, y) }
func (d *DisplayList) Rotate(angle float64)   { d.record(OpRotate, angle) }

func (d *DisplayList) Size() (width, height float64) {
	return d.width, d.height
}
