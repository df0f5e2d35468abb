// Package tollmatrix turns raw point-to-point distance observations into a
// symmetric distance matrix and the tables derived from it.
//
// 🚀 What is in the box?
//
//	• Core: cumulative, symmetric, zero-diagonal distance matrices (distance/)
//	• Long form: unroll a matrix into (id_start, id_end, distance) rows
//	• Shortest routes: Floyd–Warshall over observed edges
//	• Threshold filter: ids whose mean distance sits within ±p of a reference
//	• Tolls: per-vehicle-category rates and weekly time-window discounts
//	• Traffic analyses: car pivot, type buckets, outliers, weekly completeness
//
// Layout:
//
//	matrix/    : dense row-major storage, validators, numeric policy, Floyd–Warshall
//	distance/  : Build / BuildWithPoints / Unroll / ShortestRoutes over generic ids
//	threshold/ : WithinPercent, MeanDistances, Bounds
//	toll/      : Annotate (rates), ApplySchedule (time windows), Clock
//	traffic/   : vehicle-count exercises over loader.ReadTraffic rows
//	loader/    : CSV in (gota + validator), CSV out
//	internal/  : config (YAML) and telemetry (zap, Prometheus)
//	cmd/       : tollmatrix CLI
//
// Quick example:
//
//	X ──3── Y ──2── Z        edges: X→Y 3, Y→Z 2, Y→X 1
//
//	     X  Y  Z
//	X [  0  4  0 ]
//	Y [  4  0  2 ]
//	Z [  0  2  0 ]
//
//	go get github.com/katalvlaran/tollmatrix
package tollmatrix
