package main

import "todolist-api.com/todolist-api/cmd"

func main() {
	cmd.Execute()
}
