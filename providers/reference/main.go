package main

import (
	"context"
	"strings"

	"lector/internal/modules/provider/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// glossary is a tiny built-in dictionary so the reference provider can
// answer real lookups without external data files.
var glossary = map[string]rpc.Entry{
	"tea": {
		Headword:   "tea",
		Dictionary: "Reference Glossary",
		Phonetic:   "/tiː/",
		Definition: "a hot drink made by infusing dried leaves in boiling water",
	},
	"book": {
		Headword:   "book",
		Dictionary: "Reference Glossary",
		Phonetic:   "/bʊk/",
		Definition: "a written or printed work consisting of pages bound together",
	},
	"lector": {
		Headword:   "lector",
		Dictionary: "Reference Glossary",
		Phonetic:   "/ˈlektɔːr/",
		Definition: "a person who reads aloud, especially in a church or university",
	},
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *rpc.Empty) (*rpc.Metadata, error) {
	return &rpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Dictionaries: []string{"Reference Glossary"},
	}, nil
}

func (s *server) Lookup(_ context.Context, in *rpc.LookupRequest) (*rpc.LookupResponse, error) {
	entry, ok := glossary[strings.ToLower(strings.TrimSpace(in.Headword))]
	if !ok {
		return &rpc.LookupResponse{}, nil
	}
	return &rpc.LookupResponse{Entries: []rpc.Entry{entry}}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: rpc.HandshakeConfig,
		Plugins:         rpc.ProviderMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
