package config

// Config is the root configuration structure.
type Config struct {
	Spotify SpotifyConfig `toml:"spotify"`
	Lyrics  LyricsConfig  `toml:"lyrics"`
	Matrix  MatrixConfig  `toml:"matrix"`
	Render  RenderConfig  `toml:"render"`
	Log     LogConfig     `toml:"log"`
}

// SpotifyConfig holds playback polling settings.
type SpotifyConfig struct {
	AccessToken string `toml:"access_token"`
	PollMS      int    `toml:"poll_ms"`
}

// LyricsConfig holds lyric lookup settings.
type LyricsConfig struct {
	BaseURL  string `toml:"base_url"`
	OffsetMS int    `toml:"offset_ms"`
}

// MatrixConfig holds panel geometry and output settings.
type MatrixConfig struct {
	Rows      int    `toml:"rows"`
	Cols      int    `toml:"cols"`
	AlbumSide int    `toml:"album_side"`
	Output    string `toml:"output"`
}

// RenderConfig holds frame loop and typography settings.
type RenderConfig struct {
	FPS             int    `toml:"fps"`
	TitleSpeed      int    `toml:"title_speed"` // chars/second
	LyricSpeed      int    `toml:"lyric_speed"` // chars/second
	GapChars        int    `toml:"gap_chars"`
	TitleBaselinePx int    `toml:"title_baseline_px"`
	TitleLyricGapPx int    `toml:"title_lyric_gap_px"`
	TitleFont       string `toml:"title_font"`
	LyricFont       string `toml:"lyric_font"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File string `toml:"file"`
}
