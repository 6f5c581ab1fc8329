package vckore

import "fmt"

// ApplyJava sets up the conventional Java project layout: the units main and
// test, where test sees the main output and main's dependencies, a jar task
// that archives the main output and the verification tasks test and check.
func ApplyJava(prj *Project) error {
	if prj.FindUnit(MainUnitName) != nil {
		return fmt.Errorf("java conventions already applied to project '%s'", prj)
	}
	main, err := prj.NewUnit(MainUnitName)
	if err != nil {
		return err
	}
	test, err := prj.NewUnit(TestUnitName)
	if err != nil {
		return err
	}
	if err = test.Implementation().Extend(main.Implementation()); err != nil {
		return err
	}
	if err = test.RuntimeOnly().Extend(main.RuntimeOnly()); err != nil {
		return err
	}
	test.Implementation().AddFiles(main.Output())

	jar, err := prj.NewTask(JarTaskName, JarTask)
	if err != nil {
		return err
	}
	jar.Group = BuildGroup
	jar.Description = "Assembles a jar archive containing the classes of the 'main' feature."
	jar.From(main.Output())

	tt, err := prj.NewTask(TestTaskName, TestTask)
	if err != nil {
		return err
	}
	tt.Group = VerificationGroup
	tt.Description = "Runs the test suite."
	tt.TestClassesDirs = test.ClassesDirs()
	tt.Classpath = test.RuntimeClasspath()

	check, err := prj.NewTask(CheckTaskName, LifecycleTask)
	if err != nil {
		return err
	}
	check.Group = VerificationGroup
	check.Description = "Runs all checks."
	check.DependsOn(tt)
	return nil
}

// ApplyJavaLibrary applies [ApplyJava] and adds the api scope for
// dependencies that are part of the library's API.
func ApplyJavaLibrary(prj *Project) error {
	if err := ApplyJava(prj); err != nil {
		return err
	}
	api, err := prj.NewScope(APIScopeName)
	if err != nil {
		return err
	}
	api.CanBeResolved = false
	api.CanBeConsumed = false
	api.Description = "API dependencies for the 'main' feature."
	return prj.FindUnit(MainUnitName).Implementation().Extend(api)
}
