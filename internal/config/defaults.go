package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			PollMS: 900,
		},
		Lyrics: LyricsConfig{
			BaseURL: "https://lrclib.net/api",
		},
		Matrix: MatrixConfig{
			Rows:      32,
			Cols:      64,
			AlbumSide: 28,
			Output:    "terminal",
		},
		Render: RenderConfig{
			FPS:             30,
			TitleSpeed:      3,
			LyricSpeed:      6,
			GapChars:        3,
			TitleBaselinePx: 12,
			TitleLyricGapPx: 3,
			TitleFont:       "org01",
			LyricFont:       "tomthumb",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Spotify
	if c.Spotify.PollMS == 0 {
		c.Spotify.PollMS = d.Spotify.PollMS
	}

	// Lyrics
	if c.Lyrics.BaseURL == "" {
		c.Lyrics.BaseURL = d.Lyrics.BaseURL
	}

	// Matrix
	if c.Matrix.Rows == 0 {
		c.Matrix.Rows = d.Matrix.Rows
	}
	if c.Matrix.Cols == 0 {
		c.Matrix.Cols = d.Matrix.Cols
	}
	if c.Matrix.AlbumSide == 0 {
		c.Matrix.AlbumSide = d.Matrix.AlbumSide
	}
	if c.Matrix.Output == "" {
		c.Matrix.Output = d.Matrix.Output
	}

	// Render
	if c.Render.FPS == 0 {
		c.Render.FPS = d.Render.FPS
	}
	if c.Render.TitleSpeed == 0 {
		c.Render.TitleSpeed = d.Render.TitleSpeed
	}
	if c.Render.LyricSpeed == 0 {
		c.Render.LyricSpeed = d.Render.LyricSpeed
	}
	if c.Render.GapChars == 0 {
		c.Render.GapChars = d.Render.GapChars
	}
	if c.Render.TitleBaselinePx == 0 {
		c.Render.TitleBaselinePx = d.Render.TitleBaselinePx
	}
	if c.Render.TitleLyricGapPx == 0 {
		c.Render.TitleLyricGapPx = d.Render.TitleLyricGapPx
	}
	if c.Render.TitleFont == "" {
		c.Render.TitleFont = d.Render.TitleFont
	}
	if c.Render.LyricFont == "" {
		c.Render.LyricFont = d.Render.LyricFont
	}
}
