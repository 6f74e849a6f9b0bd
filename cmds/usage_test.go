package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()
	for _, want := range []string{
		"--help, -h, -help, help\tprint this usage",
		"  foo\tFOO",
		"    bar\tBAR",
		"      qux\tQUX",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}
