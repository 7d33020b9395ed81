// Package moviewatch answers the eternal question: what movie should I watch?
//
// It pulls the public IMDb datasets (title.basics + title.ratings), keeps the
// 100 most-voted feature films, and produces three things:
//
//   - top_100_imdb_movies.csv — the ranked list
//   - movie_analysis.png     — a four-panel dashboard (ratings vs votes,
//     movies by decade, rating by genre, runtime distribution)
//   - a text report on stdout with summary insights and per-genre leaderboards
//
// Usage:
//
//	top := movies.TopMovies(basics, ratings)
//	view := movies.View(top)
//	report.Insights(os.Stdout, view)
//
// All analysis runs through the engine package, which reads the movie slice
// through a zero-copy RecordView. Nothing is cached between runs — both
// output files are rebuilt from scratch every time.
package moviewatch
