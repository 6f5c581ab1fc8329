// This is an example build definition of a library that supports several
// versions of Apache Commons Lang.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"git.fractalqb.de/fractalqb/vercompat"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

var (
	tracer = vercompat.NewDefaultTracer()

	writeDot bool
	details  bool
)

func flags() {
	flag.BoolVar(&writeDot, "dot", writeDot, "Write graphviz file to stdout and exit")
	flag.BoolVar(&details, "details", details, "List tasks with dependencies and classpath")
	fTrace := flag.String("trace", "", "Set trace level")
	flag.Parse()

	if err := tracer.ParseLogFlag(*fTrace); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flags()

	// The project in current working dir
	ext, err := vercompat.NewJavaLibrary("", vckore.NewTrace(context.Background(), tracer))
	if err != nil {
		log.Fatal(err)
	}
	prj := ext.Host().(*vckore.Project)

	// Start editing, recovering panics to errors
	err = vercompat.Edit(ext, func(ext vercompat.ExtensionEd) {
		// Adapters for API changes between 3.0, 3.5 and 3.10
		ext.Adapters(func(a vercompat.AdaptersEd) {
			a.Namespace("lang", "3.0", "3.5", "3.10")
		})
		ext.Scope(vercompat.CommonCompileOnlyScopeName).
			Dependency("org.apache.commons:commons-lang3:3.0")
		ext.Scope(vercompat.TestCommonImplementationScopeName).
			Dependency("org.junit.jupiter:junit-jupiter:5.10.0")

		// Each released version against two JDKs, except old ones on 21
		ext.Tests(func(t vercompat.TestsEd) {
			t.Dimension("lang", "3.0", "3.5", "3.10", "3.12.0")
			t.Dimension("jdk", "17", "21")
			t.Filter(func(vs []string) bool { return vs[1] != "21" || vs[0] != "3.0" })
			t.EachTestRuntimeOnly(func(c *vercompat.TestRuntimeOnlyConfig) {
				c.AddConstraint("org.apache.commons:commons-lang3:" + c.Versions()[0] + "!!")
			})
			t.EachTestTask(func(c *vercompat.TestTaskConfig) {
				c.TestTask().SystemProperty("java.version.target", c.Versions()[1])
			})
		})

		ext.Task(vckore.CheckTaskName).
			DependsOn(vercompat.CompatibilityTestTaskName, vercompat.CompatibilityAdapterTestsTaskName)
	})
	if err != nil {
		log.Fatal("editing project:", err)
	}

	if writeDot {
		dia := vercompat.Diagrammer{RankDir: "LR", Tasks: true}
		if err := dia.WriteDot(os.Stdout, prj); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		rep := vercompat.TaskReport{Details: details}
		if err := rep.Write(os.Stdout, prj); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
		return
	}
	plan, err := prj.Plan(flag.Args()...)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	for _, t := range plan {
		os.Stdout.WriteString(t.Name() + "\n")
	}
}
