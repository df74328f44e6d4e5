package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if ArticlesAll != "/articles/all" {
		t.Fatalf("ArticlesAll = %q", ArticlesAll)
	}
	if APIPreview != "/api/preview" {
		t.Fatalf("APIPreview = %q", APIPreview)
	}
	if APIExitPreview != "/api/exit-preview" {
		t.Fatalf("APIExitPreview = %q", APIExitPreview)
	}
	if AssetsPrefix != "/mmd/" {
		t.Fatalf("AssetsPrefix = %q", AssetsPrefix)
	}
}

func TestRouteBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "article", got: Article("a1"), want: "/articles/a1"},
		{name: "article escaped", got: Article("a/b c"), want: "/articles/a%2Fb%20c"},
		{name: "category", got: Category(" c1 "), want: "/categories/c1"},
		{name: "post", got: Post("p1"), want: "/posts/p1"},
		{name: "content", got: Content("posts", "p1"), want: "/posts/p1"},
		{name: "content articles", got: Content("/articles/", "a1"), want: "/articles/a1"},
		{name: "content empty", got: Content("", "a1"), want: "/"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}
