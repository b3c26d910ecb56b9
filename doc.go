// Package marketstats computes annualized summary statistics from daily
// adjusted closing prices.
//
// A [Provider] fetches adjusted closes for a set of tickers over a date
// range into a [Market]. The market is aligned into a price [Table], the
// table is reduced to daily returns, and [Summarize] derives the annualized
// mean return, the annualized volatility and the pairwise correlation matrix
// of the tickers. The resulting [Summary] can be exported as CSV files.
package marketstats
