package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// fetchWeb retrieves a URL and returns the response body and content type.
func fetchWeb(pageURL string) ([]byte, string, error) {
	res, err := http.Get(pageURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch URL %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, "", fmt.Errorf("failed to fetch URL %s: status code %d", pageURL, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body from %s: %w", pageURL, err)
	}
	return body, res.Header.Get("Content-Type"), nil
}

// fetchWebText fetches a URL and returns its countable text: HTML pages are
// converted to markdown so markup does not inflate the counts, anything else
// is returned as-is.
func fetchWebText(pageURL string) ([]byte, error) {
	body, contentType, err := fetchWeb(pageURL)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return body, nil
	}
	return htmlToText(body, pageURL)
}

// htmlToText converts an HTML document to markdown text.
func htmlToText(html []byte, pageURL string) ([]byte, error) {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(string(html))
	if err != nil {
		return nil, fmt.Errorf("failed to convert HTML from %s: %w", pageURL, err)
	}
	return []byte(markdown), nil
}

// extractLinks fetches an HTML page and returns the absolute URLs it links
// to, in document order with duplicates removed. Fragment-only, mailto: and
// javascript: links are skipped; relative links resolve against the page URL.
func extractLinks(pageURL string) ([]string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %s: %w", pageURL, err)
	}

	body, contentType, err := fetchWeb(pageURL)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return nil, fmt.Errorf("cannot extract links: %s is not an HTML page (%s)", pageURL, contentType)
	}
	return linksFromHTML(parsedURL, body)
}

func linksFromHTML(base *url.URL, html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", base, err)
	}

	var links []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		link, exists := s.Attr("href")
		if !exists || link == "" || strings.HasPrefix(link, "#") ||
			strings.HasPrefix(strings.ToLower(link), "mailto:") ||
			strings.HasPrefix(strings.ToLower(link), "javascript:") {
			return
		}

		resolved, err := base.Parse(link)
		if err != nil {
			return
		}
		resolved.Fragment = ""
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		u := resolved.String()
		if !seen[u] {
			seen[u] = true
			links = append(links, u)
		}
	})
	return links, nil
}
