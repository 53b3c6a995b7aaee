//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/google/uuid"

	"docsearch/internal/domain"
	"docsearch/internal/usecase"
)

// localStorageKV persists values in the browser's window.localStorage.
type localStorageKV struct {
	storage js.Value
}

func newLocalStorageKV() *localStorageKV {
	return &localStorageKV{storage: js.Global().Get("localStorage")}
}

func (s *localStorageKV) Get(key string) (value string, ok bool, err error) {
	defer recoverJS(&err)
	v := s.storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (s *localStorageKV) Set(key, value string) (err error) {
	defer recoverJS(&err)
	s.storage.Call("setItem", key, value)
	return nil
}

func (s *localStorageKV) Remove(key string) (err error) {
	defer recoverJS(&err)
	s.storage.Call("removeItem", key)
	return nil
}

func (s *localStorageKV) Close() error { return nil }

// recoverJS turns a thrown JS exception (quota exceeded, storage disabled)
// into an error.
func recoverJS(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = jsErr
			return
		}
		panic(r)
	}
}

var store *usecase.DocumentStore

func main() {
	c := make(chan struct{})

	store = usecase.OpenDocumentStore(newLocalStorageKV())

	js.Global().Set("docsearchAdd", js.FuncOf(addDocument))
	js.Global().Set("docsearchRemove", js.FuncOf(removeDocument))
	js.Global().Set("docsearchClear", js.FuncOf(clearDocuments))
	js.Global().Set("docsearchList", js.FuncOf(listDocuments))
	js.Global().Set("docsearchSearch", js.FuncOf(searchDocuments))
	js.Global().Set("docsearchHighlight", js.FuncOf(highlightText))

	<-c
}

func addDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return makeError("usage: docsearchAdd(name, type, content, [id])")
	}

	content := args[2].String()
	doc := domain.Document{
		ID:           uuid.NewString(),
		Name:         args[0].String(),
		MimeType:     args[1].String(),
		Content:      content,
		Size:         int64(len(content)),
		LastModified: time.Now(),
	}
	if len(args) > 3 && args[3].Type() == js.TypeString {
		doc.ID = args[3].String()
	}

	if err := store.Add(doc); err != nil {
		return makeError("add failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"success": true,
		"id":      doc.ID,
	})
}

func removeDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: docsearchRemove(id)")
	}
	if err := store.Remove(args[0].String()); err != nil {
		return makeError("remove failed: " + err.Error())
	}
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func clearDocuments(this js.Value, args []js.Value) interface{} {
	if err := store.Clear(); err != nil {
		return makeError("clear failed: " + err.Error())
	}
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func listDocuments(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"documents": store.List(),
	})
}

func searchDocuments(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: docsearchSearch(query)")
	}

	query := args[0].String()
	results := usecase.Search(store.List(), query)
	if results == nil {
		results = []domain.MatchResult{}
	}

	return makeResult(map[string]interface{}{
		"results": results,
		"query":   query,
	})
}

func highlightText(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: docsearchHighlight(text, query)")
	}

	segments := usecase.Highlight(args[0].String(), args[1].String())
	output := make([]map[string]interface{}, 0, len(segments))
	for _, seg := range segments {
		output = append(output, map[string]interface{}{
			"text": seg.Text,
			"kind": seg.Kind.String(),
		})
	}

	return makeResult(map[string]interface{}{
		"segments": output,
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
