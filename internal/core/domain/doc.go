// Package domain contains the core types of the documentexplore analysis
// pipeline: documents, chunks, vectors, clusters, and the persisted
// artifact, along with the domain error taxonomy.
//
// Domain types have no dependencies on adapters or infrastructure.
package domain
