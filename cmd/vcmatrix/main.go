// Command vcmatrix generates the version compatibility matrix of a Java
// project from a YAML config and shows the resulting tasks, plans and
// graph.
package main

func main() {
	Execute()
}
