package model

// Expansions are the key/value variables available to a CI task at runtime.
type Expansions map[string]string

// ArgumentSet holds the vars passed to a task command.
type ArgumentSet map[string]string

// Clone returns a shallow copy of the argument set.
func (a ArgumentSet) Clone() ArgumentSet {
	out := make(ArgumentSet, len(a))
	for key, value := range a {
		out[key] = value
	}

	return out
}

// Command is a single step of a task definition.
type Command struct {
	Func    string      `yaml:"func,omitempty"`
	Command string      `yaml:"command,omitempty"`
	Vars    ArgumentSet `yaml:"vars,omitempty"`
}

// Task is a task definition from the project configuration.
type Task struct {
	Name     string    `yaml:"name"`
	Commands []Command `yaml:"commands,omitempty"`
}

// FindCommand returns the first command calling the named function.
func (t *Task) FindCommand(funcName string) (*Command, bool) {
	for i := range t.Commands {
		if t.Commands[i].Func == funcName {
			return &t.Commands[i], true
		}
	}

	return nil, false
}

// Variant is a build variant with the task definitions it runs.
type Variant struct {
	Name       string
	Expansions Expansions
	tasks      []*Task
	byName     map[string]*Task
}

// NewVariant builds a Variant from its name, expansions and tasks.
func NewVariant(name string, expansions Expansions, tasks ...*Task) *Variant {
	if expansions == nil {
		expansions = Expansions{}
	}

	v := &Variant{
		Name:       name,
		Expansions: expansions,
		tasks:      make([]*Task, 0, len(tasks)),
		byName:     make(map[string]*Task, len(tasks)),
	}

	for _, task := range tasks {
		if task == nil {
			continue
		}

		if _, ok := v.byName[task.Name]; ok {
			continue
		}

		v.tasks = append(v.tasks, task)
		v.byName[task.Name] = task
	}

	return v
}

// GetTask returns the task registered under exactly this name.
func (v *Variant) GetTask(name string) (*Task, bool) {
	task, ok := v.byName[name]
	return task, ok
}

// Tasks returns the variant's tasks in declaration order.
func (v *Variant) Tasks() []*Task {
	return v.tasks
}
