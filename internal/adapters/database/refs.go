package database

import (
	"cloud.google.com/go/firestore"

	"didgah/internal/core/document"
)

// storageFields تبدیل Refهای دامنه به DocumentRef برای نوشتن در Firestore
func storageFields(client *firestore.Client, fields document.Fields) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = storageValue(client, v)
	}
	return out
}

func storageValue(client *firestore.Client, v any) any {
	switch t := v.(type) {
	case document.Ref:
		return client.Doc(t.Path())
	case map[string]any:
		return storageFields(client, t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = storageValue(client, e)
		}
		return out
	default:
		return v
	}
}

// domainFields تبدیل DocumentRefهای خوانده‌شده به Ref دامنه
func domainFields(fields map[string]any) document.Fields {
	out := make(document.Fields, len(fields))
	for k, v := range fields {
		out[k] = domainValue(v)
	}
	return out
}

func domainValue(v any) any {
	switch t := v.(type) {
	case *firestore.DocumentRef:
		return document.Ref{Collection: t.Parent.ID, ID: t.ID}
	case map[string]any:
		return domainFields(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = domainValue(e)
		}
		return out
	default:
		return v
	}
}
