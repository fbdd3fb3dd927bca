package schema

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/whalebone-dev/whalebone/internal/registry"
	"github.com/whalebone-dev/whalebone/internal/scalar"
)

// Print writes an SDL listing of the registered types followed by the
// Query and Mutation roots.
func Print(w io.Writer, reg *registry.Registry) error {
	if !reg.Available() {
		return ErrUnavailable
	}

	var (
		b       strings.Builder
		blocks  []string
		usesDate bool
		err     error
	)

	reg.Types().Range(func(name string, obj *graphql.Object) bool {
		defs := obj.Fields()
		if err = obj.Error(); err != nil {
			err = fmt.Errorf("type %s: %w", name, err)
			return false
		}

		var lines []string
		for fieldName, def := range defs {
			if graphql.GetNamed(def.Type) == scalar.Date {
				usesDate = true
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", fieldName, typeName(def.Type)))
		}
		blocks = append(blocks, block("type "+name, lines))
		return true
	})
	if err != nil {
		return err
	}

	for _, root := range []struct {
		name   string
		bucket *registry.Bucket[*graphql.Field]
	}{
		{QueryName, reg.Queries()},
		{MutationName, reg.Mutations()},
	} {
		if root.bucket.Len() == 0 {
			continue
		}
		var lines []string
		root.bucket.Range(func(name string, f *graphql.Field) bool {
			lines = append(lines, fmt.Sprintf("  %s%s: %s", name, arguments(f.Args), typeName(f.Type)))
			return true
		})
		blocks = append(blocks, block("type "+root.name, lines))
	}

	if usesDate {
		b.WriteString("scalar " + scalar.Date.Name() + "\n\n")
	}
	b.WriteString(strings.Join(blocks, "\n"))

	_, err = io.WriteString(w, b.String())
	return err
}

func block(header string, lines []string) string {
	sort.Strings(lines)
	return header + " {\n" + strings.Join(lines, "\n") + "\n}\n"
}

func arguments(args graphql.FieldConfigArgument) string {
	if len(args) == 0 {
		return ""
	}

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, typeName(args[name].Type))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func typeName(t graphql.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
