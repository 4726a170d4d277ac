// Package geogen generates Euclidean geometry configurations and hunts
// for the theorems hiding inside them — from symbolic construction terms
// to random-picture verification and theorem filtering.
//
// 🚀 What is geogen?
//
//	A deterministic, seedable theorem generator that brings together:
//		• Symbolic terms: layouts, constructions, configurations as DAGs
//		• Canonical keys: symmetry-aware deduplication of configurations
//		• Generation: breadth-first expansion over allowed constructions
//		• Pictures: agreeing random realizations with rounded arithmetic
//		• Proving: structural candidate enumeration + analytic verification
//		• Filtering: trivial, sub-theorem, simpler-definable, transitive
//
// ✨ Why geogen?
//
//   - Reproducible – a fixed seed and one worker replay byte-for-byte
//   - Honest numerics – every claim must hold in all pictures of a set
//   - Extensible – composed constructions (macros) and template libraries
//
// The pipeline is organized as one package per stage:
//
//	term/    — object, construction, configuration, and theorem terms
//	canon/   — canonical strings, least keys, identifier rewriting
//	arggen/  — lazy argument-tuple streams per construction signature
//	confgen/ — the breadth-first configuration generator
//	geom/    — the rounded-equality analytic kernel and layouts
//	picture/ — multi-picture realization and the consistency contract
//	prover/  — theorem finder and the filter pipeline
//	parse/   — input and template file parsers
//	runner/  — worker pool, reports, the whole run
//
// The geogen command under cmd/geogen ties the stages into a CLI.
package geogen
