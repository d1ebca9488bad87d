package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/explodesh/explodesh/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Table:
			args[i] = fmt.Sprintf("table%q", x.Fields)
		case ir.Array:
			args[i] = fmt.Sprintf("array[%d]", len(x))
		case ir.Scalar:
			args[i] = x.Text()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
