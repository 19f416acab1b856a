//go:build !unix

package shell

func launch(compiler string, args, env []string) (int, error) {
	return spawn(compiler, args, env)
}
