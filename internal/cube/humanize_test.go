package cube

import "testing"

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"numberOfUsers", "Number Of Users"},
		{"uniqueFirstNames", "Unique First Names"},
		{"countrycode", "Countrycode"},
		{"country_code", "Country Code"},
		{"birth", "Birth"},
		{"HTTPStatus", "Http Status"},
		{"userID", "User Id"},
		{"p95Latency", "P95 Latency"},
		{"created-at", "Created At"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Humanize(tt.name); got != tt.want {
				t.Errorf("Humanize(%q) = %q; want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestPascalize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"characters", "Characters"},
		{"blog_posts", "BlogPosts"},
		{"order-items", "OrderItems"},
		{"BlogPosts", "BlogPosts"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pascalize(tt.name); got != tt.want {
				t.Errorf("Pascalize(%q) = %q; want %q", tt.name, got, tt.want)
			}
		})
	}
}
