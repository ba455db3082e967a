package interpreter

// Frame holds the variables of one active function call.
type Frame struct {
	FuncName string           // function this frame belongs to
	Vars     map[string]Value // local variables, parameters included
}

func newFrame(funcName string) *Frame {
	return &Frame{
		FuncName: funcName,
		Vars:     make(map[string]Value),
	}
}

// Get looks up a variable in this frame only
func (f *Frame) Get(name string) (Value, bool) {
	v, ok := f.Vars[name]
	return v, ok
}

// Set inserts or overwrites a variable
func (f *Frame) Set(name string, v Value) {
	f.Vars[name] = v
}
