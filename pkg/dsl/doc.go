/*
Package dsl provides a fluent builder for process graphs.

It exists for graphs defined in code — the built-in default process and test
fixtures — so they go through the same domain model as parsed BPMN documents:

	b := dsl.New("entry-level-quote")
	b.Add("start").Start("Start").Go("prepare")
	b.Add("prepare").Task("Prepare Values for DMN").Go("lookup")
	b.Add("lookup").Decision("Look-up Results").Go("gateway")
	b.Add("gateway").Gateway("Result / Decision Gateway").
		Branch(`quoteValidity = "Invalid"`, "set-invalid").
		Default("set-valid")
	b.Add("set-invalid").Task("Set Status Invalid").Go("end")
	b.Add("set-valid").Task("Set Status Valid").Go("end")
	b.Add("end").End("End")
	graph, err := b.Build()

Build validates the assembled graph: every edge target must exist, exactly one
start node is required, and end nodes must not have outgoing edges.
*/
package dsl
