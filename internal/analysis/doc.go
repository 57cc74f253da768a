// Package analysis scores text for resemblance to English. The frequency
// attack uses it to rank candidate decodes without any known plaintext.
//
// # Scoring
//
// A candidate's score blends three statistics computed over its letters
// (case-folded, everything else ignored):
//
//   - chi-squared distance between the observed letter distribution and
//     the corpus letter distribution, normalised per letter (lower is
//     more English, so it enters the blend negated)
//   - mean log10 probability of its bigrams
//   - mean log10 probability of its trigrams
//
//	score = -0.30*(chi2/letters) + 0.40*bigramAvg + 0.30*trigramAvg
//
// N-grams absent from the corpus cost the floor probability 0.01/total,
// so a single rare gram hurts but does not veto a candidate. Scores are
// meaningful only relative to other scores from the same Scorer; higher
// is better.
//
// # Corpus
//
// The English model is embedded at build time from corpus/*.txt, one
// "GRAM COUNT" pair per line, counts drawn from published English
// letter and n-gram tables. Default returns the shared scorer backed by
// that model; NewScorer accepts custom tables, which the tests use.
package analysis
