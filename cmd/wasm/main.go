//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"textvec/internal/adapter/sequence"
	"textvec/internal/adapter/wordindex"
	"textvec/internal/domain"
	"textvec/internal/usecase"
)

var processor *usecase.TextProcessor

func init() {
	reset()
}

func reset() {
	indexer := wordindex.NewWordIndexer(wordindex.DefaultOptions())
	processor = usecase.NewTextProcessor(indexer, sequence.DefaultPadder())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("textvecFit", js.FuncOf(fitTexts))
	js.Global().Set("textvecVocab", js.FuncOf(getVocab))
	js.Global().Set("textvecEncode", js.FuncOf(encodeTexts))
	js.Global().Set("textvecBow", js.FuncOf(bowTexts))
	js.Global().Set("textvecStats", js.FuncOf(getStats))
	js.Global().Set("textvecReset", js.FuncOf(resetProcessor))

	<-c
}

// jsTexts converts a JS array of strings into a text batch.
func jsTexts(v js.Value) []domain.Text {
	texts := make([]domain.Text, 0, v.Length())
	for i := 0; i < v.Length(); i++ {
		texts = append(texts, domain.Raw(v.Index(i).String()))
	}
	return texts
}

func fitTexts(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textvecFit(texts)")
	}

	vocab, err := processor.ReadAllTexts(jsTexts(args[0]))
	if err != nil {
		return makeError("fitting failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"success": true,
		"words":   len(vocab),
	})
}

func getVocab(this js.Value, args []js.Value) interface{} {
	vocab, err := processor.Vocabulary()
	if err != nil {
		return makeError("no vocabulary: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"vocabulary": vocab,
		"words":      len(vocab),
	})
}

func encodeTexts(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textvecEncode(texts, [length])")
	}

	length := -1
	if len(args) > 1 {
		length = args[1].Int()
	}

	matrices, err := processor.TextsToNum(length, jsTexts(args[0]))
	if err != nil {
		return makeError("encoding failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"rows": matrices[0],
	})
}

func bowTexts(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textvecBow(texts, [mode])")
	}

	mode := domain.MatrixBinary
	if len(args) > 1 {
		mode = domain.MatrixMode(args[1].String())
	}

	matrices, err := processor.TextsToMatrix(mode, jsTexts(args[0]))
	if err != nil {
		return makeError("encoding failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"rows": matrices[0],
	})
}

func getStats(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"state": processor.State().String(),
		"words": processor.WordCount(),
	})
}

func resetProcessor(this js.Value, args []js.Value) interface{} {
	reset()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
