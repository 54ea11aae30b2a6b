package chat

import (
	"sync"

	"digitull1/wonderwhiz-api/config"
	"digitull1/wonderwhiz-api/llm"
)

type contentKey struct {
	Topic    string
	AgeRange string
	Language string
}

// RelatedTopicsCache memoizes "what else might this user want to learn" per
// (topic, age range, language) key. Entries are write-once per key and never
// evicted within a session. A single generation may be in flight at a time;
// racing callers get an empty list rather than queuing.
type RelatedTopicsCache struct {
	mu       sync.Mutex
	entries  map[contentKey][]string
	inflight bool
}

func NewRelatedTopicsCache() *RelatedTopicsCache {
	return &RelatedTopicsCache{entries: make(map[contentKey][]string)}
}

// Get returns the cached list for the key, generating it on first use.
// Failure yields the fixed fallback list without caching it, so a later call
// can retry.
func (c *RelatedTopicsCache) Get(gen Generator, topic, ageRange, language string) []string {
	key := contentKey{Topic: topic, AgeRange: ageRange, Language: language}

	c.mu.Lock()
	if cached, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return cached
	}
	if c.inflight {
		c.mu.Unlock()
		return []string{}
	}
	c.inflight = true
	c.mu.Unlock()

	text, err := gen.GenerateResponse(llm.BuildRelatedTopicsPrompt(topic), ageRange, language)

	c.mu.Lock()
	c.inflight = false
	if cached, ok := c.entries[key]; ok {
		// first successful generation wins
		c.mu.Unlock()
		return cached
	}
	c.mu.Unlock()

	if err != nil {
		config.Logger.Warn("Related topics generation failed: ", err)
		return RelatedFallbackTopics()
	}

	topics := capEntries(ParseTopics(text), config.ChatConfig.MaxRelatedTopics)
	if len(topics) == 0 {
		return RelatedFallbackTopics()
	}

	c.mu.Lock()
	if _, ok := c.entries[key]; !ok {
		c.entries[key] = topics
	}
	stored := c.entries[key]
	c.mu.Unlock()
	return stored
}

// Prefetch warms the cache off the request path after a new topic starts
func (c *RelatedTopicsCache) Prefetch(gen Generator, topic, ageRange, language string) {
	c.Get(gen, topic, ageRange, language)
}
