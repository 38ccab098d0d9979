package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string,
// EventHandler.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			applyAttr(node, v)

		case []Attr:
			for _, a := range v {
				applyAttr(node, a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			node.Children = append(node.Children, Text(v))

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

func applyAttr(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	node.Props[a.Key] = a.Value
}

// Element constructors. Only the tags the kit renders are provided; the
// generic El covers anything else.

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// Div creates a <div> element.
func Div(args ...any) *VNode { return createElement("div", args) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return createElement("span", args) }

// P creates a <p> element.
func P(args ...any) *VNode { return createElement("p", args) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return createElement("button", args) }

// Img creates an <img> element.
func Img(args ...any) *VNode { return createElement("img", args) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return createElement("h1", args) }

// H2 creates an <h2> element.
func H2(args ...any) *VNode { return createElement("h2", args) }

// Label creates a <label> element.
func Label(args ...any) *VNode { return createElement("label", args) }

// Select creates a <select> element.
func Select(args ...any) *VNode { return createElement("select", args) }

// Option creates an <option> element.
func Option(args ...any) *VNode { return createElement("option", args) }
