package resolve

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"chemfetch/internal/pubchem"
)

// NotFound is the placeholder value for any field that could not be resolved.
const NotFound = "Not found"

// Record is the result of one lookup: CAS registry number, IUPAC name, and
// Isomeric SMILES, in output order.
type Record struct {
	RegistryNumber    string
	StandardName      string
	StructureNotation string
}

// TabLine renders the record as the tab-delimited output line.
func (r Record) TabLine() string {
	return r.RegistryNumber + "\t" + r.StandardName + "\t" + r.StructureNotation
}

// FallbackRecord is the uniform triple returned when any step of the chain
// fails. Partial results from earlier steps are never leaked.
func FallbackRecord() Record {
	return Record{
		RegistryNumber:    NotFound,
		StandardName:      NotFound,
		StructureNotation: NotFound,
	}
}

// Resolver chains the four PUG REST calls for a single compound name.
type Resolver struct {
	client *pubchem.Client
	logger *slog.Logger
}

func New(client *pubchem.Client, logger *slog.Logger) *Resolver {
	return &Resolver{client: client, logger: logger}
}

// Resolve looks up a compound name and always returns a complete record.
// Each step depends on the previous one and is awaited before the next is
// issued. Any request or decode failure collapses the whole lookup to the
// fallback triple; only a synonym list without a CAS-shaped entry degrades
// a single field.
func (r *Resolver) Resolve(ctx context.Context, name string) Record {
	cid, err := r.client.CIDByName(ctx, name)
	if err != nil {
		r.logFailure(name, err)
		return FallbackRecord()
	}

	synonyms, err := r.client.Synonyms(ctx, cid)
	if err != nil {
		r.logFailure(name, err)
		return FallbackRecord()
	}
	registry := firstRegistryNumber(synonyms)
	if registry == "" {
		registry = NotFound
	}

	iupac, err := r.client.Property(ctx, cid, pubchem.PropertyIUPACName)
	if err != nil {
		r.logFailure(name, err)
		return FallbackRecord()
	}

	smiles, err := r.client.Property(ctx, cid, pubchem.PropertyIsomericSMILES)
	if err != nil {
		r.logFailure(name, err)
		return FallbackRecord()
	}

	return Record{
		RegistryNumber:    registry,
		StandardName:      iupac,
		StructureNotation: smiles,
	}
}

func (r *Resolver) logFailure(name string, err error) {
	var reqErr *pubchem.RequestError
	if errors.As(err, &reqErr) {
		r.logger.Error("request failed", "compound", name, "error", err)
		return
	}
	r.logger.Error("unexpected error", "compound", name, "error", err)
}

// firstRegistryNumber returns the first synonym that looks like a CAS
// registry number, or "" when none qualifies.
func firstRegistryNumber(synonyms []string) string {
	for _, s := range synonyms {
		if isRegistryNumber(s) {
			return s
		}
	}
	return ""
}

// isRegistryNumber reports whether a synonym, with hyphens removed, is one
// or more ASCII digits. Plain digit strings qualify too.
func isRegistryNumber(s string) bool {
	stripped := strings.ReplaceAll(s, "-", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
