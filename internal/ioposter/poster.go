// Package ioposter implements the rbg.Poster interface against the garden
// website's REST API. It owns the HTTP session: a cookie jar for the CSRF
// cookie and a DRF token obtained at login, both attached to every
// subsequent request.
package ioposter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/redbuttegarden/brahmsync/pkg/brahms"
	"github.com/redbuttegarden/brahmsync/pkg/config"
	"github.com/redbuttegarden/brahmsync/pkg/rbg"
)

type poster struct {
	cfg       *config.APIConfig
	client    *http.Client
	scheme    string
	csrfToken string
	authToken string
	enc       gnfmt.Encoder
}

// New creates an unauthenticated Poster. Call Login before submitting.
func New(cfg *config.APIConfig) rbg.Poster {
	jar, _ := cookiejar.New(nil)
	scheme := "https"
	if !cfg.SSL {
		scheme = "http"
	}
	return &poster{
		cfg:    cfg,
		client: &http.Client{Jar: jar},
		scheme: scheme,
		enc:    gnfmt.GNjson{},
	}
}

func (p *poster) url(path string) string {
	u := url.URL{Scheme: p.scheme, Host: p.cfg.Host, Path: path}
	return u.String()
}

// Login submits username/password to the token endpoint and keeps the
// returned CSRF cookie and DRF token for the rest of the session.
func (p *poster) Login(ctx context.Context) error {
	form := url.Values{
		"username": {p.cfg.Username},
		"password": {p.cfg.Password},
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, p.url("/plants/api/token/"),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return AuthError(p.cfg.Host, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return AuthError(p.cfg.Host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AuthError(p.cfg.Host, err)
	}
	if resp.StatusCode != http.StatusOK {
		return AuthError(p.cfg.Host, fmt.Errorf(
			"token endpoint returned status %d", resp.StatusCode))
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "csrftoken" {
			p.csrfToken = cookie.Value
		}
	}
	if p.csrfToken == "" {
		return AuthError(p.cfg.Host,
			fmt.Errorf("no csrftoken cookie in token response"))
	}

	var tok struct {
		Token string `json:"token"`
	}
	if err = p.enc.Decode(body, &tok); err != nil || tok.Token == "" {
		return AuthError(p.cfg.Host,
			fmt.Errorf("no token in response: %w", err))
	}
	p.authToken = tok.Token

	return nil
}

// setHeaders attaches the session headers every authenticated request needs.
func (p *poster) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json; q=1.0, */*")
	req.Header.Set("X-CSRFToken", p.csrfToken)
	req.Header.Set("Authorization", "Token "+p.authToken)
}

// CreateCollection posts one plant collection payload to the collections
// endpoint. Any HTTP status is returned in the Result; errors are
// transport failures only.
func (p *poster) CreateCollection(
	ctx context.Context, payload *brahms.Collection,
) (*rbg.Result, error) {
	body, err := p.enc.Encode(payload)
	if err != nil {
		return nil, CollectionPostError(payload.PlantID, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, p.url("/plants/api/collections/"),
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, CollectionPostError(payload.PlantID, err)
	}
	p.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, CollectionPostError(payload.PlantID, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, CollectionPostError(payload.PlantID, err)
	}

	return &rbg.Result{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}, nil
}

// FindSpecies queries the species endpoint by taxonomic fields.
func (p *poster) FindSpecies(
	ctx context.Context, query brahms.SpeciesQuery,
) (*rbg.SpeciesResult, error) {
	params := url.Values{
		"genus":      {query.Genus},
		"name":       {query.Name},
		"subspecies": {query.Subspecies},
		"variety":    {query.Variety},
		"subvariety": {query.Subvariety},
		"forma":      {query.Forma},
		"subforma":   {query.Subforma},
		"cultivar":   {query.Cultivar},
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet,
		p.url("/plants/api/species/")+"?"+params.Encode(), nil,
	)
	if err != nil {
		return nil, SpeciesQueryError(query.Genus, query.Name, err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, SpeciesQueryError(query.Genus, query.Name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, SpeciesQueryError(query.Genus, query.Name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, SpeciesQueryError(query.Genus, query.Name,
			fmt.Errorf("species query returned status %d: %s",
				resp.StatusCode, body))
	}

	var res rbg.SpeciesResult
	if err = p.enc.Decode(body, &res); err != nil {
		return nil, SpeciesQueryError(query.Genus, query.Name, err)
	}

	return &res, nil
}

// AttachImage uploads the image at path to the species set-image endpoint.
// The file handle is held only for the duration of this call.
func (p *poster) AttachImage(
	ctx context.Context, speciesID int, path string,
) (*rbg.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ImageOpenError(path, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return nil, ImageAttachError(speciesID, path, err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return nil, ImageAttachError(speciesID, path, err)
	}
	if err = mw.Close(); err != nil {
		return nil, ImageAttachError(speciesID, path, err)
	}

	endpoint := fmt.Sprintf("/plants/api/species/%d/set-image/", speciesID)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, p.url(endpoint), &buf,
	)
	if err != nil {
		return nil, ImageAttachError(speciesID, path, err)
	}
	p.setHeaders(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, ImageAttachError(speciesID, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ImageAttachError(speciesID, path, err)
	}

	return &rbg.Result{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}, nil
}
