package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"
)

// registerConsole installs console.log, console.warn, and console.error so
// icon scripts can report progress the same way the CLI does: log to stdout,
// warnings and errors to stderr.
func registerConsole(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		fmt.Println(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(os.Stderr, "WARN:", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(os.Stderr, "ERROR:", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
