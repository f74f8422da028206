// Package gnpthreshold holds the input plumbing shared by the threshold
// tools: opening results files from local disk or Google Storage, home
// directory expansion, and transparent decompression.
//
// The analysis itself lives in the subpackages: results parses the
// simulator's sectioned output, threshold holds the theoretical models and
// the empirical 50% crossover, comparison joins the two into a report, and
// plot renders the charts.
package gnpthreshold
