// Package bsonutil convierte identificadores y documentos entre la forma
// interna de MongoDB y la forma expuesta en la API.
package bsonutil

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid id")

// ObjectID convierte un id externo en ObjectID; un id mal formado es error del cliente
func ObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// ToExternal renombra _id a id y convierte a texto cualquier ObjectID embebido.
// Un documento nil se devuelve tal cual; el original no se modifica.
func ToExternal(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = externalValue(v)
	}
	if id, ok := doc["_id"]; ok {
		out["id"] = stringID(id)
	}
	return out
}

// ToExternalAll aplica ToExternal a cada documento
func ToExternalAll(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToExternal(d))
	}
	return out
}

func stringID(v interface{}) interface{} {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return v
}

func externalValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case bson.M:
		nested := make(bson.M, len(val))
		for k, x := range val {
			nested[k] = externalValue(x)
		}
		return nested
	case map[string]interface{}:
		nested := make(map[string]interface{}, len(val))
		for k, x := range val {
			nested[k] = externalValue(x)
		}
		return nested
	case bson.D:
		nested := make(bson.D, 0, len(val))
		for _, e := range val {
			nested = append(nested, bson.E{Key: e.Key, Value: externalValue(e.Value)})
		}
		return nested
	case bson.A:
		return externalSlice(val)
	case []interface{}:
		return []interface{}(externalSlice(val))
	default:
		return v
	}
}

func externalSlice(val []interface{}) bson.A {
	out := make(bson.A, 0, len(val))
	for _, x := range val {
		out = append(out, externalValue(x))
	}
	return out
}
