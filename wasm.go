//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/worlds/worlds"
)

func main() {
	js.Global().Set("EvaluateSentence", js.FuncOf(worlds.EvaluateSentence))
	js.Global().Set("ShowSentence", js.FuncOf(worlds.ShowSentence))

	// wait indefinitely so that Go does not terminate execution
	// and the functions remain available
	<-make(chan struct{})
}
