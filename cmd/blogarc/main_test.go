package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	opts := Opts{
		Config: "non-existent-config.yml",
	}

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	// create a temporary invalid config file
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	// write invalid yaml
	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	opts := Opts{
		Config: tmpFile.Name(),
	}

	err = run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ArchivesBlog(t *testing.T) {
	var server *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/feeds/posts/default", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start-index") == "" {
			assert.Equal(t, "25", r.URL.Query().Get("max-results"))
			fmt.Fprintf(w, postsPage1, server.URL)
			return
		}
		fmt.Fprint(w, postsPage2)
	})
	mux.HandleFunc("/feeds/111/comments/default", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, commentsFeed)
	})
	mux.HandleFunc("/feeds/222/comments/default", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, emptyCommentsFeed)
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	outDir := filepath.Join(t.TempDir(), "posts")
	t.Setenv("TEST_BLOG_URL", server.URL)
	t.Setenv("TEST_OUTPUT_DIR", outDir)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "testdata/test_config.yml"})
	require.NoError(t, err)

	// first post, with a comment feed behind post id 111
	dir1 := filepath.Join(outDir, "2008", "2008-04-13-19-45-hello-world")
	index1, err := os.ReadFile(filepath.Join(dir1, "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Hello World\n\nFirst post\n", string(index1))

	comments1, err := os.ReadFile(filepath.Join(dir1, "comments.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Comments\n\n## alice - 2008-04-14 09:00\n\nNice one\n\n", string(comments1))

	// second post, no comments in its feed
	dir2 := filepath.Join(outDir, "2009", "2009-01-02-03-04-second")
	index2, err := os.ReadFile(filepath.Join(dir2, "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Second\n\nplain text\n", string(index2))
	assert.NoFileExists(t, filepath.Join(dir2, "comments.md"))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		cfg, err := loadConfig(Opts{})
		require.NoError(t, err)
		assert.Equal(t, "https://theguitarman.blogspot.com", cfg.Blog.URL)
		assert.Equal(t, "posts", cfg.Output.Dir)
	})

	t.Run("cli overrides", func(t *testing.T) {
		cfg, err := loadConfig(Opts{Blog: "https://other.blogspot.com", Output: "/tmp/archive"})
		require.NoError(t, err)
		assert.Equal(t, "https://other.blogspot.com", cfg.Blog.URL)
		assert.Equal(t, "/tmp/archive", cfg.Output.Dir)
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		_, err := loadConfig(Opts{Blog: "ftp://not-a-blog"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http(s)")
	})
}

const postsPage1 = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<id>tag:blogger.com,1999:blog-42</id>
	<title>Guitar Notes</title>
	<link rel="next" href="%s/feeds/posts/default?start-index=2&amp;max-results=25"/>
	<entry>
		<id>tag:blogger.com,1999:blog-42.post-111</id>
		<published>2008-04-13T19:45:00-07:00</published>
		<title>Hello World</title>
		<content type="html">&lt;p&gt;First post&lt;/p&gt;</content>
		<author>
			<name>gman</name>
		</author>
	</entry>
</feed>`

const postsPage2 = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<id>tag:blogger.com,1999:blog-42</id>
	<title>Guitar Notes</title>
	<entry>
		<id>tag:blogger.com,1999:blog-42.post-222</id>
		<published>2009-01-02T03:04:00Z</published>
		<title>Second</title>
		<summary>plain text</summary>
	</entry>
</feed>`

const commentsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<id>tag:blogger.com,1999:blog-42.post-111.comments</id>
	<title>Comments on Hello World</title>
	<entry>
		<id>tag:blogger.com,1999:blog-42.post-111.comment-9000</id>
		<published>2008-04-14T09:00:00Z</published>
		<title>comment</title>
		<content type="html">&lt;p&gt;Nice one&lt;/p&gt;</content>
		<author>
			<name>alice</name>
		</author>
	</entry>
</feed>`

const emptyCommentsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<id>tag:blogger.com,1999:blog-42.post-222.comments</id>
	<title>Comments on Second</title>
</feed>`
