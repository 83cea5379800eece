package chatmd_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-chatmd"
)

// Example renders a message with the default options.
func Example() {
	fmt.Println(chatmd.Render("Hello **world**"))
	// Output: <p>Hello <strong>world</strong></p>
}

// Example_codeFence shows that code is escaped and never interpreted.
func Example_codeFence() {
	fmt.Println(chatmd.Render("```html\n<b>**not bold**</b>\n```"))
	// Output: <pre><code class="language-html">&lt;b&gt;**not bold**&lt;/b&gt;</code></pre>
}

// ExampleNewRenderer removes a custom reasoning tag and renders a task list.
func ExampleNewRenderer() {
	r, err := chatmd.NewRenderer(chatmd.WithSideChannelTags("reasoning"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(r.Render("<reasoning>hidden</reasoning>- [x] ship it"))
	// Output: <ul><li><input type="checkbox" disabled checked /> ship it</li></ul>
}

// ExampleWithSafeURLs drops a script link but keeps its label.
func ExampleWithSafeURLs() {
	r, err := chatmd.NewRenderer(chatmd.WithSafeURLs(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(r.Render("[click](javascript:evil)"))
	// Output: <p>click</p>
}

// ExampleNewEngine selects the CommonMark engine by name.
func ExampleNewEngine() {
	engine, err := chatmd.NewEngine(chatmd.EngineCommonMark)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html, err := engine.ToHTML(context.Background(), "| a |\n|---|\n| 1 |")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, "<table>") {
		fmt.Println("table rendered")
	}
	// Output: table rendered
}

// ExampleWrapDocument produces a standalone page.
func ExampleWrapDocument() {
	page, err := chatmd.WrapDocument(context.Background(), chatmd.Render("# Answer"), chatmd.DocumentOptions{
		Title: "Answer",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.HasPrefix(page, "<!DOCTYPE html>") && strings.Contains(page, "<h1>Answer</h1>") {
		fmt.Println("document ready")
	}
	// Output: document ready
}
