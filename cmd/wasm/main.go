//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/shigedangao/simmer"
	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/shigedangao/simmer/internal/adapter/memstore"
	"github.com/shigedangao/simmer/internal/usecase"
)

var (
	store     *memstore.MemoryStore
	tokenizer *analyzer.Tokenizer
	indexer   *usecase.IndexUseCase
	lookup    *usecase.LookupUseCase
)

func init() {
	tokenizer = analyzer.NewTokenizer(analyzer.TokenizerOptions{
		Stemming:  true,
		Stopwords: true,
		MinLength: 2,
	})
	reset()
}

func reset() {
	store = memstore.NewMemoryStore()
	indexer = usecase.NewIndexUseCase(store, nil, nil, tokenizer)
	lookup = usecase.NewLookupUseCase(store, tokenizer, analyzer.NewPorterStemmer())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("simmerStem", js.FuncOf(stemWord))
	js.Global().Set("simmerStemSentence", js.FuncOf(stemSentence))
	js.Global().Set("simmerIndex", js.FuncOf(indexContent))
	js.Global().Set("simmerLookup", js.FuncOf(lookupWord))
	js.Global().Set("simmerClear", js.FuncOf(clearIndex))
	js.Global().Set("simmerStats", js.FuncOf(getStats))

	<-c
}

func stemWord(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: simmerStem(word)")
	}

	stem, err := simmer.Stem(args[0].String())
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{"stem": stem})
}

func stemSentence(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: simmerStemSentence(text)")
	}

	stems, err := simmer.StemSentence(args[0].String())
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{"stems": stems})
}

func indexContent(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: simmerIndex(filename, content)")
	}

	filename := args[0].String()
	if err := indexer.IndexContent(filename, args[1].String(), time.Now()); err != nil {
		return makeError("indexing failed: " + err.Error())
	}

	stats, _ := store.GetStats()
	return makeResult(map[string]interface{}{
		"success":  true,
		"filename": filename,
		"groups":   stats.TotalGroups,
	})
}

func lookupWord(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: simmerLookup(word)")
	}

	group, err := lookup.Lookup(args[0].String())
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{
		"stem":  group.Stem,
		"forms": group.Forms,
		"total": group.Total,
	})
}

func clearIndex(this js.Value, args []js.Value) interface{} {
	reset()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func getStats(this js.Value, args []js.Value) interface{} {
	stats, _ := store.GetStats()
	docs, _ := store.ListDocs()

	filenames := make([]string, len(docs))
	for i, doc := range docs {
		filenames[i] = doc.Path
	}

	return makeResult(map[string]interface{}{
		"totalDocs":   stats.TotalDocs,
		"totalGroups": stats.TotalGroups,
		"totalTokens": stats.TotalTokens,
		"files":       filenames,
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
