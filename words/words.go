package words

import (
	"fmt"
	"strings"

	kiterrors "github.com/kbukum/shkit/errors"
)

// KW supplies keyword arguments for {name} placeholders. Pass one as the
// final argument to Split.
type KW map[string]string

// Split expands a command template into an argv word list.
//
// The template is split on whitespace. Each {} placeholder consumes the
// next positional argument and the whole argument lands in a single word,
// spaces and all, so no shell-style quoting is ever needed. Text adjacent
// to a placeholder stays in the same word ("--dir={}"). A {name}
// placeholder reads from a trailing KW argument. A field consisting solely
// of {...} splices a []string argument as multiple words.
//
//	Split("tar czf {} {...}", dest, files)
//	Split("git -C {dir} log -1", words.KW{"dir": repo})
func Split(format string, args ...any) ([]string, error) {
	var kw KW
	if n := len(args); n > 0 {
		if m, ok := args[n-1].(KW); ok {
			kw = m
			args = args[:n-1]
		}
	}

	var (
		out    []string
		pos    int
		usedKW = make(map[string]bool)
	)

	for _, field := range strings.Fields(format) {
		if field == "{...}" {
			if pos >= len(args) {
				return nil, kiterrors.Usage("missing argument for {...} placeholder")
			}
			list, ok := args[pos].([]string)
			if !ok {
				return nil, kiterrors.Usage("{...} placeholder requires a []string argument").
					WithDetail("got", fmt.Sprintf("%T", args[pos]))
			}
			pos++
			out = append(out, list...)
			continue
		}

		word, consumed, err := expandField(field, args[pos:], kw, usedKW)
		if err != nil {
			return nil, err
		}
		pos += consumed
		out = append(out, word)
	}

	if pos < len(args) {
		return nil, kiterrors.Usage("too many arguments for template").
			WithDetail("unused", len(args)-pos)
	}
	for name := range kw {
		if !usedKW[name] {
			return nil, kiterrors.Usage("unused keyword argument").
				WithDetail("name", name)
		}
	}

	return out, nil
}

// MustSplit is Split for static templates; it panics on error.
func MustSplit(format string, args ...any) []string {
	w, err := Split(format, args...)
	if err != nil {
		panic(err)
	}
	return w
}

// expandField substitutes the placeholders inside a single field and
// reports how many positional arguments it consumed.
func expandField(field string, args []any, kw KW, usedKW map[string]bool) (string, int, error) {
	var (
		b        strings.Builder
		consumed int
	)
	for i := 0; i < len(field); {
		c := field[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(field[i:], '}')
		if end < 0 {
			return "", 0, kiterrors.Usage("unclosed placeholder in template").
				WithDetail("field", field)
		}
		name := field[i+1 : i+end]
		i += end + 1

		switch name {
		case "":
			if consumed >= len(args) {
				return "", 0, kiterrors.Usage("missing argument for {} placeholder").
					WithDetail("field", field)
			}
			word, err := argWord(args[consumed])
			if err != nil {
				return "", 0, err
			}
			consumed++
			b.WriteString(word)
		case "...":
			return "", 0, kiterrors.Usage("{...} must be a whole word").
				WithDetail("field", field)
		default:
			val, ok := kw[name]
			if !ok {
				return "", 0, kiterrors.Usage("missing keyword argument").
					WithDetail("name", name)
			}
			usedKW[name] = true
			b.WriteString(val)
		}
	}
	return b.String(), consumed, nil
}

func argWord(arg any) (string, error) {
	switch v := arg.(type) {
	case string:
		return v, nil
	case []string:
		return "", kiterrors.Usage("list argument requires the {...} placeholder")
	default:
		return fmt.Sprint(v), nil
	}
}
