// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package headers

import (
	"net/http"
	"net/textproto"
	"sort"

	"github.com/MKhiriev/http-contracts/models"
)

const hostHeader = "Host"

// Inspector implements [models.HeaderReader] over an incoming request.
//
// net/http moves the Host header out of the header map into
// [http.Request.Host]; Inspector puts it back so both views behave as if it
// had been received like any other header.
type Inspector struct {
	host   string
	header http.Header
}

// New builds an Inspector for r. The request's header map is read, never
// modified.
func New(r *http.Request) *Inspector {
	return &Inspector{
		host:   r.Host,
		header: r.Header,
	}
}

// Get returns the first value of the named header. Name matching is
// case-insensitive. A header sent with an empty value is reported as present.
func (i *Inspector) Get(name string) (string, bool) {
	key := textproto.CanonicalMIMEHeaderKey(name)
	if key == hostHeader {
		return i.host, i.host != ""
	}

	values, ok := i.header[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Raw returns every header line without deduplication: a header that appears
// N times yields N pairs. Host comes first, the rest follow in canonical name
// order because net/http does not retain wire order.
func (i *Inspector) Raw() []models.HeaderPair {
	names := make([]string, 0, len(i.header))
	size := 0
	for name, values := range i.header {
		names = append(names, name)
		size += len(values)
	}
	sort.Strings(names)

	pairs := make([]models.HeaderPair, 0, size+1)
	if i.host != "" {
		pairs = append(pairs, models.HeaderPair{Name: hostHeader, Value: i.host})
	}
	for _, name := range names {
		for _, value := range i.header[name] {
			pairs = append(pairs, models.HeaderPair{Name: name, Value: value})
		}
	}
	return pairs
}

// Flatten turns pairs into the alternating [name, value, name, value, ...]
// sequence returned by GET /raw_headers.
func Flatten(pairs []models.HeaderPair) []string {
	flat := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		flat = append(flat, p.Name, p.Value)
	}
	return flat
}
