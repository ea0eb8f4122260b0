package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"vietger/internal/domain"
)

// wordsFile is the versioned envelope of a deck resource.
type wordsFile struct {
	DataModelVersion int           `json:"dataModelVersion"`
	Metadata         *fileMetadata `json:"metadata,omitempty"`
	Entries          []wordEntry   `json:"entries"`
}

type fileMetadata struct {
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
	Level          string `json:"level,omitempty"`
	TotalEntries   int    `json:"totalEntries,omitempty"`
	LastUpdated    string `json:"lastUpdated,omitempty"`
	Description    string `json:"description,omitempty"`
}

type wordEntry struct {
	ID       string                  `json:"id,omitempty"`
	Source   domain.Translation      `json:"source"`
	Target   domain.Translation      `json:"target"`
	Category domain.Category         `json:"category"`
	Example  *domain.ExampleSentence `json:"exampleSentence,omitempty"`
}

// sentencesFile is the versioned envelope of a sentence resource.
type sentencesFile struct {
	DataModelVersion int                      `json:"dataModelVersion"`
	Sentences        []domain.ExampleSentence `json:"sentences"`
}

// DeckSource names the resource files backing one deck.
type DeckSource struct {
	Words     string
	Sentences string
}

// Deck is one loaded, merged deck plus its sentence resolver.
type Deck struct {
	ID       string
	Words    []*domain.Word
	Resolver *Resolver
}

// Catalog holds every loaded deck. It is immutable after Load and safe for
// concurrent reads.
type Catalog struct {
	decks  map[string]*Deck
	logger *slog.Logger
}

// Load reads, merges and indexes all configured decks. Deck resources load
// concurrently and the results are combined once all complete. A missing or
// malformed resource yields an empty deck, never an error: an empty deck is a
// valid (if useless) state and session start is gated elsewhere.
func Load(sources map[string]DeckSource, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "catalog"))

	c := &Catalog{
		decks:  make(map[string]*Deck, len(sources)),
		logger: logger,
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for id, src := range sources {
		wg.Add(1)
		go func(id string, src DeckSource) {
			defer wg.Done()
			deck := loadDeck(id, src, logger)
			mu.Lock()
			c.decks[id] = deck
			mu.Unlock()
		}(id, src)
	}
	wg.Wait()
	return c
}

func loadDeck(id string, src DeckSource, logger *slog.Logger) *Deck {
	words := loadWords(src.Words, logger)
	merged := Merge(words)

	sentences := loadSentences(src.Sentences, logger)
	// Inline examples participate in lookup under the word's ID.
	for _, w := range merged {
		if w.Example != nil && w.Example.OwnerKey == "" {
			w.Example.OwnerKey = w.ID
		}
	}

	logger.Info("deck loaded",
		slog.String("deck", id),
		slog.Int("raw_entries", len(words)),
		slog.Int("merged_entries", len(merged)),
		slog.Int("sentences", len(sentences)))

	return &Deck{
		ID:       id,
		Words:    merged,
		Resolver: NewResolver(sentences),
	}
}

// loadWords decodes a deck resource into domain words. Entries that fail
// validation are skipped with a warning rather than poisoning the deck.
func loadWords(path string, logger *slog.Logger) []*domain.Word {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read deck resource",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}

	var file wordsFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn("failed to decode deck resource",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}

	words := make([]*domain.Word, 0, len(file.Entries))
	for i, entry := range file.Entries {
		category := entry.Category
		if !category.IsValid() {
			logger.Debug("unknown category, using other",
				slog.String("path", path),
				slog.String("category", string(category)))
			category = domain.CategoryOther
		}

		w, err := domain.NewWord(entry.ID, entry.Source, entry.Target, category)
		if err != nil {
			logger.Warn("skipping invalid deck entry",
				slog.String("path", path),
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}
		w.Example = entry.Example
		words = append(words, w)
	}
	return words
}

func loadSentences(path string, logger *slog.Logger) []domain.ExampleSentence {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read sentence resource",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}

	var file sentencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn("failed to decode sentence resource",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}
	return file.Sentences
}

// Deck returns the deck with the given ID, or nil when it is not loaded.
func (c *Catalog) Deck(id string) *Deck {
	return c.decks[id]
}

// Words returns the merged word list of a deck, or nil for an unknown deck.
func (c *Catalog) Words(id string) []*domain.Word {
	if d := c.decks[id]; d != nil {
		return d.Words
	}
	return nil
}

// DeckIDs lists the loaded deck identifiers.
func (c *Catalog) DeckIDs() []string {
	ids := make([]string, 0, len(c.decks))
	for id := range c.decks {
		ids = append(ids, id)
	}
	return ids
}

// Resolve finds the example sentence for a word within a deck.
func (c *Catalog) Resolve(deckID string, w *domain.Word) (*domain.ExampleSentence, bool) {
	d := c.decks[deckID]
	if d == nil {
		return nil, false
	}
	return d.Resolver.Resolve(w)
}

// WordByID finds a word in a deck by its stable identifier.
func (c *Catalog) WordByID(deckID, wordID string) (*domain.Word, error) {
	d := c.decks[deckID]
	if d == nil {
		return nil, fmt.Errorf("%w: deck %q", ErrDeckNotFound, deckID)
	}
	for _, w := range d.Words {
		if w.ID == wordID {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in deck %q", ErrWordNotFound, wordID, deckID)
}
