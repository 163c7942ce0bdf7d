//go:build js && wasm

package worlds

import (
	"fmt"
	"strconv"
	"syscall/js"
)

// EvaluateSentence evaluates the sentence in args[0] in the world
// described by the object in args[1], whose keys are partitionings and
// whose values are the chosen parts
//
// output: { error: string } | { value: bool }
func EvaluateSentence(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("evaluation panicked: " + fmt.Sprint(r))
		}
	}()
	if len(args) != 2 {
		return errorObj(fmt.Sprintf("expected 2 arguments, got %d", len(args)))
	}

	choices, err := jsChoices(args[1])
	if err != nil {
		return errorObj(err.Error())
	}

	value, err := EvaluateSource(args[0].String(), choices)
	if err != nil {
		return errorObj(Describe(err))
	}
	return js.ValueOf(map[string]any{"value": value})
}

// ShowSentence renders the sentence in args[0] in the style named by args[1]
//
// output: { error: string } | { text: string }
func ShowSentence(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("rendering panicked: " + fmt.Sprint(r))
		}
	}()
	if len(args) != 2 {
		return errorObj(fmt.Sprintf("expected 2 arguments, got %d", len(args)))
	}

	text, err := ShowSource(args[0].String(), args[1].String())
	if err != nil {
		return errorObj(Describe(err))
	}
	return js.ValueOf(map[string]any{"text": text})
}

func errorObj(err string) any {
	return js.ValueOf(map[string]any{
		"error": err,
	})
}

// jsChoices reads a JS object of partitioning to part. Numbers and
// booleans are read as the text the sentence syntax spells them with.
func jsChoices(obj js.Value) (map[string]string, error) {
	if obj.Type() != js.TypeObject {
		return nil, fmt.Errorf("world must be an object, got %s", obj.Type())
	}
	choices := map[string]string{}
	keys := js.Global().Get("Object").Call("keys", obj)
	for i := 0; i < keys.Length(); i++ {
		key := keys.Index(i).String()
		part, err := jsPart(obj.Get(key))
		if err != nil {
			return nil, fmt.Errorf("part of '%s': %w", key, err)
		}
		choices[key] = part
	}
	return choices, nil
}

func jsPart(v js.Value) (string, error) {
	switch v.Type() {
	case js.TypeString:
		return v.String(), nil
	case js.TypeNumber:
		return NumberPart(v.Float()), nil
	case js.TypeBoolean:
		return strconv.FormatBool(v.Bool()), nil
	default:
		return "", fmt.Errorf("unsupported %s value", v.Type())
	}
}
