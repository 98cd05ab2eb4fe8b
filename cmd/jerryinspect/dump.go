package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jerryscript-go/jerry/engine"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/object"
	"github.com/jerryscript-go/jerry/value"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Build a small sample object graph and print its own properties",
		Long: `The dump command creates a fresh engine context, builds a sample
object hanging a few data properties (including a nested object and a
string) off the primordial realm's global object, and prints the
resulting own-property table. There being no parser in this module, this
stands in for dumping a loaded script's global state.

Example:
  jerryinspect dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump()
		},
	}
}

func runDump() error {
	printVerbose("initializing engine context\n")
	ctx := engine.Init(engine.Config{})
	defer ctx.Cleanup()

	global := ctx.CurrentRealm().Global

	child, err := object.New(ctx.Arena, layout.NullPointer, layout.ClassNone)
	if err != nil {
		return err
	}
	greeting := ctx.Heap.NewString([]byte("hello"))
	if err := ctx.Objects.CreateDataProperty(child, ctx.Magic.Get(value.MagicName), greeting); err != nil {
		return err
	}

	answer := ctx.Heap.Number(42)
	if err := ctx.Objects.CreateDataProperty(global, ctx.Magic.Get(value.MagicValue), answer); err != nil {
		return err
	}
	if err := ctx.Objects.CreateDataProperty(global, ctx.Magic.Get(value.MagicMessage), value.HeapObject(child)); err != nil {
		return err
	}

	printInfo("global (ref=%d):\n", global)
	dumpOwnProperties(ctx, global, 1)
	return nil
}

func dumpOwnProperties(ctx *engine.Context, ref uint32, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	for _, key := range ctx.Objects.OwnKeys(ref) {
		desc, ok := ctx.Objects.GetOwnProperty(ref, key)
		if !ok {
			continue
		}
		printInfo("%s%s: %s\n", indent, formatValue(ctx, key), describeDescriptor(ctx, desc))
		if desc.HasValue && desc.Value.IsObject() && desc.Value.Ref() != ref {
			dumpOwnProperties(ctx, desc.Value.Ref(), depth+1)
		}
	}
}

func describeDescriptor(ctx *engine.Context, d object.Descriptor) string {
	if d.IsAccessor {
		return fmt.Sprintf("accessor(get=%d, set=%d)", d.Get, d.Set)
	}
	return formatValue(ctx, d.Value)
}

func formatValue(ctx *engine.Context, v value.Value) string {
	switch {
	case v.IsUndefined():
		return "undefined"
	case v.IsNull():
		return "null"
	case v.IsBoolean():
		return fmt.Sprintf("%t", v.IsTrue())
	case v.IsSmallInt():
		return fmt.Sprintf("%d", v.AsInt32Immediate())
	case v.IsHeapFloat():
		return fmt.Sprintf("%g", ctx.Heap.ReadFloat(v))
	case v.IsString():
		return fmt.Sprintf("%q", string(ctx.Heap.CopyToUTF8(v)))
	case v.IsObject():
		return fmt.Sprintf("object(ref=%d)", v.Ref())
	case v.IsSymbol():
		return "symbol"
	case v.IsBigInt():
		return "bigint"
	default:
		return "?"
	}
}
