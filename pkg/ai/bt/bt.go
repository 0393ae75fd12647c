package bt

// Status 节点执行状态
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusRunning:
		return "running"
	}
	return "unknown"
}

// Node 行为树节点，B 为黑板类型
type Node[B any] interface {
	Tick(bb B) Status
}

// Selector 选择节点：遇到 Success 或 Running 停止，全部 Failure 才 Failure
type Selector[B any] struct {
	Children []Node[B]
}

func (s *Selector[B]) Tick(bb B) Status {
	for _, child := range s.Children {
		if st := child.Tick(bb); st != StatusFailure {
			return st
		}
	}
	return StatusFailure
}

// Sequence 顺序节点：遇到 Failure 或 Running 停止，全部 Success 才 Success
type Sequence[B any] struct {
	Children []Node[B]
}

func (s *Sequence[B]) Tick(bb B) Status {
	for _, child := range s.Children {
		if st := child.Tick(bb); st != StatusSuccess {
			return st
		}
	}
	return StatusSuccess
}

// Condition 条件节点
type Condition[B any] struct {
	Check func(bb B) bool
}

func (c *Condition[B]) Tick(bb B) Status {
	if c.Check == nil || !c.Check(bb) {
		return StatusFailure
	}
	return StatusSuccess
}

// Action 动作节点
type Action[B any] struct {
	Do func(bb B) Status
}

func (a *Action[B]) Tick(bb B) Status {
	if a.Do == nil {
		return StatusFailure
	}
	return a.Do(bb)
}

// Inverter 反转子节点的 Success/Failure
type Inverter[B any] struct {
	Child Node[B]
}

func (n *Inverter[B]) Tick(bb B) Status {
	switch n.Child.Tick(bb) {
	case StatusSuccess:
		return StatusFailure
	case StatusFailure:
		return StatusSuccess
	}
	return StatusRunning
}

// Seq 简写
func Seq[B any](children ...Node[B]) *Sequence[B] {
	return &Sequence[B]{Children: children}
}

// Sel 简写
func Sel[B any](children ...Node[B]) *Selector[B] {
	return &Selector[B]{Children: children}
}

// If 条件节点简写
func If[B any](check func(bb B) bool) *Condition[B] {
	return &Condition[B]{Check: check}
}

// Do 动作节点简写
func Do[B any](fn func(bb B) Status) *Action[B] {
	return &Action[B]{Do: fn}
}
