//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2026-present Detlef Stern
//-----------------------------------------------------------------------------

// Package metrics counts the outcome of reference resolution and tree
// building with Prometheus collectors.
package metrics

import (
	"errors"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/builder"
)

const namespace = "wikitree"

// Collector observes resolvers and builders. It can be shared by concurrent
// parses. A nil *Collector observes nothing.
type Collector struct {
	references    *prom.CounterVec
	refFailures   *prom.CounterVec
	documents     prom.Counter
	nodes         prom.Histogram
	buildFailures *prom.CounterVec
	parseDuration *prom.HistogramVec
}

// New creates the collectors and registers them with reg. If reg is nil, a
// new registry is used.
func New(reg prom.Registerer) *Collector {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	c := &Collector{
		references: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "references_resolved_total",
			Help:      "Resolved references by type and whether the type was explicit",
		}, []string{"type", "typed"}),
		refFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "reference_errors_total",
			Help:      "Malformed references by type prefix",
		}, []string{"prefix"}),
		documents: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_built_total",
			Help:      "Successfully built document trees",
		}),
		nodes: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "document_nodes",
			Help:      "Number of nodes of a built document tree",
			Buckets:   prom.ExponentialBuckets(8, 4, 8),
		}),
		buildFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_errors_total",
			Help:      "Failed builds by cause",
		}, []string{"cause"}),
		parseDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Duration of parsing and building one document",
			Buckets:   prom.DefBuckets,
		}, []string{"syntax"}),
	}
	reg.MustRegister(c.references, c.refFailures, c.documents, c.nodes, c.buildFailures, c.parseDuration)
	return c
}

// Resolved counts a resolved reference.
func (c *Collector) Resolved(ref *ast.Reference) {
	if c == nil || ref == nil {
		return
	}
	typed := "false"
	if ref.Typed {
		typed = "true"
	}
	c.references.WithLabelValues(ref.Type.String(), typed).Inc()
}

// Failed counts a malformed reference.
func (c *Collector) Failed(prefix string, _ error) {
	if c == nil {
		return
	}
	c.refFailures.WithLabelValues(prefix).Inc()
}

// DocumentBuilt counts a finished document tree.
func (c *Collector) DocumentBuilt(nodes int) {
	if c == nil {
		return
	}
	c.documents.Inc()
	c.nodes.Observe(float64(nodes))
}

// BuildFailed counts a failed build.
func (c *Collector) BuildFailed(err error) {
	if c == nil {
		return
	}
	c.buildFailures.WithLabelValues(Cause(err)).Inc()
}

// ObserveParse records the duration of one parse.
func (c *Collector) ObserveParse(syntax string, d time.Duration) {
	if c == nil {
		return
	}
	c.parseDuration.WithLabelValues(syntax).Observe(d.Seconds())
}

// Cause returns a short label for the structural error.
func Cause(err error) string {
	switch {
	case errors.Is(err, builder.ErrUnbalanced):
		return "unbalanced"
	case errors.Is(err, builder.ErrIncomplete):
		return "incomplete"
	case errors.Is(err, builder.ErrTrailing):
		return "trailing"
	case errors.Is(err, builder.ErrHeaderLevel):
		return "header-level"
	}
	return "other"
}

// WriteFile writes all metrics of g in the Prometheus text format to the
// file at path.
func WriteFile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
