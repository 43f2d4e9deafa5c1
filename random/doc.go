// Package random provides the engine's deterministic random stream: a
// multiply-with-carry generator over two 32-bit words with a fixed
// seed. The stream exists for reproducibility, not statistical quality:
// column permutation and cost perturbation must produce bit-identical
// results on successive runs over the same LP, so the generator is
// reinitialisable with Reset and never seeded from the environment.
//
// Integer yields a non-negative 31-bit value; Fraction yields a value
// in [0, 1). One state advance backs each call, so mixed
// Integer/Fraction call sequences consume the stream in call order.
package random
