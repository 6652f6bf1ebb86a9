package cmds

// GlobalExecutor holds process-wide commands; packages register flags in
// their init functions through Define.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func MustExecute(args []string) {
	GlobalExecutor.MustExecute(args)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}
