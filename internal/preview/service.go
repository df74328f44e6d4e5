package preview

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/mashirovoc/blog/internal/cms"
	apperrors "github.com/mashirovoc/blog/internal/platform/errors"
)

// DefaultType is the endpoint previewed when no type is requested.
const DefaultType = cms.EndpointPosts

var (
	// ErrMissingSlug rejects an enter request without a slug.
	ErrMissingSlug = apperrors.New(apperrors.CodePreviewSlugMissing, "preview slug is required")
	// ErrInvalidSlug reports that the CMS could not resolve the slug.
	ErrInvalidSlug = apperrors.New(apperrors.CodePreviewSlugInvalid, "Invalid slug")
	// ErrDisabled reports that no signing secret is configured.
	ErrDisabled = apperrors.New(apperrors.CodePreviewDisabled, "preview is disabled")
)

// previewTypes lists the endpoints a preview may target.
var previewTypes = map[string]bool{
	cms.EndpointPosts:      true,
	cms.EndpointArticles:   true,
	cms.EndpointCategories: true,
}

// Request is an enter-preview request.
type Request struct {
	Slug     string
	DraftKey string
	Type     string
}

// Grant is the outcome of a successful enter-preview request.
type Grant struct {
	Token    string
	Location string
	Data     Data
}

// Service verifies preview targets and issues tokens.
type Service struct {
	reader cms.Reader
	signer *Signer
}

// NewService builds a preview service.
func NewService(reader cms.Reader, signer *Signer) *Service {
	return &Service{reader: reader, signer: signer}
}

// Signer returns the token signer.
func (s *Service) Signer() *Signer {
	if s == nil {
		return nil
	}
	return s.signer
}

// Enter verifies req against the CMS and issues a preview token.
//
// The record is fetched as {type}/{slug}?fields=id&draftKey=... and the
// returned id becomes the preview slug. The redirect target is /{type}/{slug}.
// Types outside the known endpoints are rejected as an invalid slug.
func (s *Service) Enter(ctx context.Context, req Request) (Grant, error) {
	if s == nil || !s.signer.Enabled() {
		return Grant{}, ErrDisabled
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return Grant{}, ErrMissingSlug
	}
	typ := strings.Trim(strings.TrimSpace(req.Type), "/")
	if typ == "" {
		typ = DefaultType
	}
	if !previewTypes[typ] {
		return Grant{}, ErrInvalidSlug
	}

	raw, err := s.reader.Get(ctx, typ, slug, cms.Query{Fields: []string{"id"}, DraftKey: req.DraftKey})
	if err != nil {
		return Grant{}, apperrors.Wrap(apperrors.CodePreviewSlugInvalid, ErrInvalidSlug.Message, err)
	}
	var content struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &content); err != nil || strings.TrimSpace(content.ID) == "" {
		return Grant{}, ErrInvalidSlug
	}

	data := Data{Slug: content.ID, DraftKey: req.DraftKey}
	token, err := s.signer.Sign(data)
	if err != nil {
		return Grant{}, err
	}
	return Grant{Token: token, Location: "/" + typ + "/" + url.PathEscape(slug), Data: data}, nil
}
