// Package partition splits a road graph into k connected zones of roughly
// balanced weight, using a weighted variant of Lloyd's k-means over edge
// midpoints. The weight driving the balance is caller-selectable: total
// estimated addresses (the default, for flyer-count fairness) or total
// road length (for geographic fairness when density data is unreliable).
package partition
