// Package standardize resolves free-text creditor mentions to canonical
// identities and validates extracted payment histories. The creditor
// dictionary lives in the external store; the resolver keeps an in-memory
// snapshot and tolerates store unavailability by falling back to built-in
// data — store failures are logged, never surfaced to callers.
package standardize

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"crediscope/internal/domain"
	"crediscope/internal/port"
)

// Fuzzy matches below this similarity are rejected as unrelated names.
const fuzzyThreshold = 0.7

// MatchMethod records how a creditor name was resolved.
type MatchMethod string

const (
	MatchExact   MatchMethod = "exact"
	MatchFuzzy   MatchMethod = "fuzzy"
	MatchCreated MatchMethod = "created"
)

// Match is the result of resolving one raw creditor string. Confidence is a
// 0–1 resolution confidence: 1.0 for an exact alias hit, similarity × 0.8
// for a fuzzy hit, 0.6 for a newly minted identity.
type Match struct {
	Identity   domain.CreditorIdentity
	Confidence float64
	Method     MatchMethod
}

const dictionaryCacheKey = "creditor_dictionary"

// Resolver resolves creditor names against the alias dictionary.
type Resolver struct {
	repo    port.CreditorRepository
	cache   *gocache.Cache
	timeout time.Duration
	titler  cases.Caser
}

// NewResolver creates a Resolver. dictTTL controls how long the in-memory
// dictionary snapshot stays fresh; timeout bounds every store call.
func NewResolver(repo port.CreditorRepository, timeout, dictTTL time.Duration) *Resolver {
	return &Resolver{
		repo:    repo,
		cache:   gocache.New(dictTTL, 2*dictTTL),
		timeout: timeout,
		titler:  cases.Title(language.English),
	}
}

// Resolve maps a raw creditor string to a canonical identity: exact alias
// lookup first, then fuzzy matching over the dictionary snapshot, then
// minting a new identity. Store failures degrade to built-in data and are
// never returned as errors; only an empty name is.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Match, error) {
	alias := NormalizeAlias(raw)
	if alias == "" {
		return nil, domain.ErrEmptyCreditor
	}

	if m := r.lookupExact(ctx, alias); m != nil {
		r.bumpUsage(m.Identity.StandardizedName)
		return m, nil
	}

	if m := r.lookupFuzzy(ctx, alias); m != nil {
		r.bumpUsage(m.Identity.StandardizedName)
		return m, nil
	}

	return r.mint(alias), nil
}

func (r *Resolver) lookupExact(ctx context.Context, alias string) *Match {
	if cached, found := r.cache.Get("alias:" + alias); found {
		identity := cached.(domain.CreditorIdentity)
		return &Match{Identity: identity, Confidence: 1.0, Method: MatchExact}
	}

	for _, identity := range r.snapshot(ctx) {
		if aliasMatches(&identity, alias) {
			r.cache.SetDefault("alias:"+alias, identity)
			return &Match{Identity: identity, Confidence: 1.0, Method: MatchExact}
		}
	}

	lctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	identity, err := r.repo.LookupByAlias(lctx, alias)
	if err != nil {
		if err != domain.ErrCreditorNotFound {
			log.Printf("standardize.Resolver: alias lookup failed for %q: %v", alias, err)
		}
		return nil
	}
	r.cache.SetDefault("alias:"+alias, *identity)
	return &Match{Identity: *identity, Confidence: 1.0, Method: MatchExact}
}

func (r *Resolver) lookupFuzzy(ctx context.Context, alias string) *Match {
	var (
		best    *domain.CreditorIdentity
		bestSim float64
	)
	dict := r.snapshot(ctx)
	for i := range dict {
		identity := &dict[i]
		candidates := append([]string{NormalizeAlias(identity.StandardizedName)}, identity.Aliases...)
		for _, c := range candidates {
			if sim := Similarity(alias, c); sim > bestSim {
				bestSim = sim
				best = identity
			}
		}
	}

	if best == nil || bestSim <= fuzzyThreshold {
		return nil
	}
	// Fuzzy uncertainty discounts the similarity by 0.8.
	return &Match{Identity: *best, Confidence: bestSim * 0.8, Method: MatchFuzzy}
}

// mint creates a new identity for an unknown creditor and persists it
// asynchronously. Duplicate near-identical identities from racing writers
// are acceptable; future fuzzy matches reconcile them.
func (r *Resolver) mint(alias string) *Match {
	identity := domain.CreditorIdentity{
		StandardizedName: r.canonicalName(alias),
		Industry:         guessIndustry(alias),
		Aliases:          []string{alias},
		UsageCount:       1,
	}
	r.cache.SetDefault("alias:"+alias, identity)
	r.cache.SetDefault("alias:"+NormalizeAlias(identity.StandardizedName), identity)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.repo.Insert(ctx, &identity); err != nil {
			log.Printf("standardize.Resolver: persisting minted creditor %q failed: %v", identity.StandardizedName, err)
		}
	}()

	return &Match{Identity: identity, Confidence: 0.6, Method: MatchCreated}
}

// snapshot returns the dictionary, loading it from the store lazily and
// falling back to the built-in seed when the store is unreachable.
func (r *Resolver) snapshot(ctx context.Context) []domain.CreditorIdentity {
	if cached, found := r.cache.Get(dictionaryCacheKey); found {
		return cached.([]domain.CreditorIdentity)
	}

	lctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	dict, err := r.repo.List(lctx)
	if err != nil || len(dict) == 0 {
		if err != nil {
			log.Printf("standardize.Resolver: dictionary load failed, using built-in seed: %v", err)
		}
		dict = normalizedSeed()
	}
	r.cache.SetDefault(dictionaryCacheKey, dict)
	return dict
}

func (r *Resolver) bumpUsage(standardizedName string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.repo.IncrementUsage(ctx, standardizedName); err != nil {
			log.Printf("standardize.Resolver: usage increment failed for %q: %v", standardizedName, err)
		}
	}()
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`[^a-z0-9 &.-]`)
)

// NormalizeAlias lowercases, strips stray punctuation, and collapses
// whitespace so alias comparisons are stable.
func NormalizeAlias(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = punctRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// legalSuffixes keeps corporate suffixes in their conventional casing when
// a minted name is title-cased.
var legalSuffixes = map[string]string{
	"llc": "LLC", "inc": "Inc", "inc.": "Inc", "corp": "Corp",
	"na": "NA", "n.a.": "NA", "usa": "USA", "llp": "LLP", "co": "Co",
}

func (r *Resolver) canonicalName(alias string) string {
	words := strings.Fields(alias)
	for i, w := range words {
		if suffix, ok := legalSuffixes[strings.ToLower(w)]; ok {
			words[i] = suffix
			continue
		}
		words[i] = r.titler.String(w)
	}
	return strings.Join(words, " ")
}

func guessIndustry(alias string) string {
	for _, group := range industryKeywords {
		for _, word := range group.words {
			if strings.Contains(alias, word) {
				return group.industry
			}
		}
	}
	return "unknown"
}

func aliasMatches(identity *domain.CreditorIdentity, alias string) bool {
	if NormalizeAlias(identity.StandardizedName) == alias {
		return true
	}
	for _, a := range identity.Aliases {
		if a == alias {
			return true
		}
	}
	return false
}

func normalizedSeed() []domain.CreditorIdentity {
	out := make([]domain.CreditorIdentity, len(seedIdentities))
	copy(out, seedIdentities)
	return out
}
