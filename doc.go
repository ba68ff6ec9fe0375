// Package stockfolio implements a lot-based investment portfolio ledger
// with historical price resolution, trend analytics, a recurring
// investment simulator and a performance chart bucketer.
//
// The engine is synchronous and single-process: portfolios and
// strategies live in memory and are persisted to CSV files only on
// explicit save, while daily price series are mirrored to a
// self-healing on-disk cache by the quote package.
package stockfolio
