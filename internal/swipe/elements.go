package swipe

import (
	"fmt"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/ports"
)

// ActionableClasses mark descendants that react to taps on their own
var ActionableClasses = []string{"mx-button", "mx-link", "clickable"}

// maxAncestorDepth bounds parent walks so a detached or cyclic tree terminates
const maxAncestorDepth = 256

// ElementSet holds the elements a controller drives, resolved once at attach
type ElementSet struct {
	After      byDirection[ports.Element]
	Background byDirection[ports.Element]
	Container  ports.Element
	Foreground ports.Element
}

// SharedBackground reports whether both directions reveal the same pane
func (e ElementSet) SharedBackground() bool {
	return e.Background[domain.DirectionLeft] == e.Background[domain.DirectionRight]
}

// SharedAfter reports whether both directions use the same after pane
func (e ElementSet) SharedAfter() bool {
	return e.After[domain.DirectionLeft] == e.After[domain.DirectionRight]
}

// ResolveElements looks up the named panes below container.
// A name that is set but not found is a configuration error.
func ResolveElements(container ports.Element, cfg Configuration) (ElementSet, error) {
	set := ElementSet{
		After:      newByDirection[ports.Element](nil, nil),
		Background: newByDirection[ports.Element](nil, nil),
		Container:  container,
	}

	fg, err := findElement(container, cfg.foreground, "Foreground")
	if err != nil {
		return ElementSet{}, err
	}
	if fg == nil {
		fg = container
	}
	set.Foreground = fg

	for _, d := range domain.Directions {
		opts := cfg.Direction(d)
		bg, err := findElement(container, opts.Background, fmt.Sprintf("Background %s", d))
		if err != nil {
			return ElementSet{}, err
		}
		set.Background[d] = bg

		after, err := findElement(container, opts.AfterBackground, fmt.Sprintf("After swipe background %s", d))
		if err != nil {
			return ElementSet{}, err
		}
		set.After[d] = after

		if opts.Action == domain.PostSwipeButton && cfg.axis.Allows(d) {
			if bg == nil {
				return ElementSet{}, domain.NewConfigError(fmt.Sprintf("Swipe container %s", d),
					"required when 'After swipe %s' is set to 'Stick to button(s)'", d)
			}
			if len(actionableDescendants(bg)) == 0 {
				return ElementSet{}, domain.NewConfigError(fmt.Sprintf("Swipe container %s", d),
					"no buttons found in '%s'", opts.Background)
			}
		}
	}

	return set, nil
}

func findElement(root ports.Element, name, displayName string) (ports.Element, error) {
	if name == "" {
		return nil, nil
	}
	if el := findByName(root, name); el != nil {
		return el, nil
	}
	return nil, domain.NewConfigError(displayName, "no element found with the name %s", name)
}

// findByName searches the subtree below root breadth first
func findByName(root ports.Element, name string) ports.Element {
	queue := append([]ports.Element(nil), root.Children()...)
	for len(queue) > 0 {
		el := queue[0]
		queue = queue[1:]
		if el.Name() == name {
			return el
		}
		queue = append(queue, el.Children()...)
	}
	return nil
}

func actionableDescendants(root ports.Element) []ports.Element {
	var found []ports.Element
	stack := append([]ports.Element(nil), root.Children()...)
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if hasAnyClass(el, ActionableClasses) {
			found = append(found, el)
		}
		stack = append(stack, el.Children()...)
	}
	return found
}

func hasAnyClass(el ports.Element, classes []string) bool {
	for _, class := range classes {
		if el.HasClass(class) {
			return true
		}
	}
	return false
}

// withinActionable walks from target up to boundary (inclusive) and reports
// whether any node on the way carries one of classes.
func withinActionable(boundary, target ports.Element, classes []string) bool {
	node := target
	for depth := 0; node != nil && depth < maxAncestorDepth; depth++ {
		if hasAnyClass(node, classes) {
			return true
		}
		if node == boundary {
			return false
		}
		node = node.Parent()
	}
	return false
}
