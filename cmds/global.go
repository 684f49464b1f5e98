package cmds

// GlobalExecutor holds the commands defined by packages at init time.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor and returns the positional
// arguments. It panics on errors.
func Execute(args []string) []string {
	positional, err := GlobalExecutor.Parse(args)
	if err != nil {
		panic(err)
	}
	return positional
}
