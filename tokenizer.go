package main

import (
	"fmt"
	"os"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer counts LLM tokens in text. Close releases any backend resources.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const defaultTiktokenModel = "gpt-4o"
const defaultHFModel = "gpt2"

// getTokenizer builds the backend selected by the --tokenizer, --model and
// --tokenizer-file flags.
func getTokenizer() (Tokenizer, error) {
	switch strings.ToLower(tokenizerType) {
	case "tiktoken":
		model := tokenizerModel
		if model == "" {
			model = defaultTiktokenModel
		}
		enc, err := tiktoken.EncodingForModel(model)
		if err != nil && model != defaultTiktokenModel {
			fmt.Fprintf(os.Stderr, "Warning: tiktoken model '%s' not found, falling back to '%s': %v\n", model, defaultTiktokenModel, err)
			enc, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get tiktoken encoding for model '%s': %w", model, err)
		}
		return &tiktokenCounter{enc: enc}, nil

	case "huggingface":
		path := tokenizerFile
		if path == "" {
			model := tokenizerModel
			if model == "" {
				model = defaultHFModel
			}
			// CachedPath downloads tokenizer.json from the Hub on first use.
			cached, err := hf.CachedPath(model, "tokenizer.json")
			if err != nil {
				return nil, fmt.Errorf("failed to get cache path for model %s: %w", model, err)
			}
			path = cached
		}
		tok, err := pretrained.FromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load tokenizer from %s: %w", path, err)
		}
		return &hfCounter{tok: tok}, nil

	default:
		return nil, fmt.Errorf("unsupported tokenizer type: %s. Use 'tiktoken' or 'huggingface'", tokenizerType)
	}
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c *tiktokenCounter) CountTokens(text string) int {
	if c.enc == nil {
		return 0
	}
	return len(c.enc.EncodeOrdinary(text))
}

func (c *tiktokenCounter) Close() {}

type hfCounter struct {
	tok *hf.Tokenizer
}

func (c *hfCounter) CountTokens(text string) int {
	if c.tok == nil {
		return 0
	}
	en, err := c.tok.EncodeSingle(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tokenizer failed to encode text: %v\n", err)
		return 0
	}
	return len(en.Tokens)
}

func (c *hfCounter) Close() {}
