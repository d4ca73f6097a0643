// Package host applies unit descriptors to fyne canvas objects. It builds
// layout contexts from fyne geometry and provides a fyne.Layout that sizes
// and places each child from its descriptors.
package host
