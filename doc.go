/*
Package sedml is an object model of SED-ML, the Simulation Experiment
Description Markup Language, with XML reading and writing.

Each schema element is a Go type holding its attributes and children,
with accessors for every attribute: A, IsSetA, SetA and UnsetA. Setters
which validate their argument return an error, nil or a sederr.Status,
and leave the element unchanged when they fail. Repeated children are
held by ListOf containers which own their items.

Read a document, inspect the problems found in it and write it back:

	d, err := sedml.ReadFile("experiment.sedml")
	if err != nil {
		return err
	}
	for _, problem := range d.Errors().Errors() {
		fmt.Println(problem)
	}
	out, err := sedml.WriteString(d)

Reading never stops at a schema violation. Missing or malformed
attributes, unknown elements and duplicate ids are logged on the
document and reading continues; only malformed XML ends it.

MathML expressions, notes, annotations and other embedded XML are kept
as opaque trees (see the mathml and xmltree packages) and written back
as they were read.
*/
package sedml
