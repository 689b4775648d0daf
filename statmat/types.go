// SPDX-License-Identifier: MIT

package statmat

import "errors"

// ErrNilMatrix is returned when Compute receives a nil matrix.
var ErrNilMatrix = errors.New("statmat: matrix is nil")

// DegreeRecord holds the degree figures of one unit.
// Degree and WeightedDegree are outgoing (count and sum of positive flows);
// InDegree and WeightedInDegree are their inbound counterparts.
type DegreeRecord struct {
	ID               string  `json:"id"`
	Degree           int     `json:"degree"`
	WeightedDegree   float64 `json:"weighted_degree"`
	InDegree         int     `json:"in_degree"`
	WeightedInDegree float64 `json:"weighted_in_degree"`
}

// ComponentSummary describes one weakly connected component.
// WeightedDegree is the sum of the members' outgoing weighted degrees.
type ComponentSummary struct {
	ID             int      `json:"id"`
	Size           int      `json:"size"`
	WeightedDegree float64  `json:"weighted_degree"`
	Members        []string `json:"members"`
}

// Summary is the five-number summary plus mean and standard deviation of a
// sample. Every field is 0 for an empty sample.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"sd"`
}

// Report is the full ConnectivityStats result for one matrix.
type Report struct {
	Units   int     `json:"units"`
	Cells   int     `json:"cells"`
	Links   int     `json:"links"`
	Density float64 `json:"density"`
	Sum     float64 `json:"sum"`

	// Components counts every weak component, isolated units included.
	Components int `json:"components"`
	// NonTrivialComponents counts components with more than one unit.
	NonTrivialComponents int `json:"components_gt1"`

	Degrees        []DegreeRecord     `json:"degrees"`
	ComponentSizes []ComponentSummary `json:"component_sizes"`

	Flows                 Summary `json:"flows"`
	DegreeSummary         Summary `json:"degree_summary"`
	WeightedDegreeSummary Summary `json:"weighted_degree_summary"`
}
