/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"gocanvas/internal/config"
	"gocanvas/internal/crash"
	"gocanvas/internal/editor"
	"gocanvas/internal/input"
	applog "gocanvas/internal/log"
	"gocanvas/internal/render"
	"gocanvas/internal/replay"
	"gocanvas/internal/ui"
	"gocanvas/internal/version"
)

func usage() {
	fmt.Println("gocanvas — rectangle diagram editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gocanvas version|-v|--version            Show version")
	fmt.Println("  gocanvas ui                              Launch desktop UI (build with -tags fyne for full UI)")
	fmt.Println("  gocanvas replay <script.yaml> [out]      Run an event script headlessly; out may be .png or .pdf")
	fmt.Println("  gocanvas keys                            Print the effective key bindings")
	fmt.Println("  gocanvas config [init]                   Print the effective configuration, or write the defaults")
}

func main() {
	// initialize structured logging using environment defaults until the config is read
	applog.Init(applog.FromEnv())
	target := &crash.Target{}
	defer crash.Recover(target)

	cfg, err := config.Load()
	if err != nil {
		applog.WithComponent("cli").Warn("config ignored", slog.Any("err", err))
	}
	applog.Init(cfg.LogOptions())
	l := applog.WithComponent("cli")

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("gocanvas")
			fmt.Println(version.String())
			return
		case "ui":
			if err := ui.Run(cfg); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "replay":
			if len(args) < 3 {
				fmt.Println("replay requires <script.yaml>")
				usage()
				os.Exit(2)
			}
			out := ""
			if len(args) >= 4 {
				out = args[3]
			}
			if err := runReplay(cfg, target, args[2], out, l); err != nil {
				l.Error("replay failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "keys":
			km, err := input.FromConfig(cfg.Keys)
			if err != nil {
				fmt.Println("Warning:", err)
			}
			for _, b := range km.Bindings() {
				fmt.Println(b)
			}
			return
		case "config":
			if len(args) >= 3 && args[2] == "init" {
				path, _ := config.ConfigPath()
				if err := config.Save(config.Defaults()); err != nil {
					fmt.Println("Error:", err)
					os.Exit(1)
				}
				fmt.Println("Wrote", path)
				return
			}
			path, _ := config.ConfigPath()
			fmt.Println("# file:", path)
			data, err := yaml.Marshal(cfg)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Print(string(data))
			return
		}
	}

	usage()
}

func runReplay(cfg config.AppConfig, target *crash.Target, script, out string, l *slog.Logger) error {
	ecfg, err := cfg.EditorConfig()
	if err != nil {
		l.Warn("editor config", slog.Any("err", err))
	}
	km, err := input.FromConfig(cfg.Keys)
	if err != nil {
		l.Warn("key bindings", slog.Any("err", err))
	}
	sc, err := replay.Load(script)
	if err != nil {
		return err
	}
	sess := editor.New(ecfg)
	target.Frame = sess.Frame
	if err := replay.Run(sess, sc, km); err != nil {
		return err
	}
	fmt.Printf("Mode: %s\nShapes: %d\nSelected: %d\n", sess.Mode(), sess.Store().Len(), sess.Selection().Len())
	if out == "" {
		return nil
	}
	if err := render.WriteFile(out, sess.Frame(), render.DefaultOptions()); err != nil {
		return err
	}
	fmt.Println("Wrote", out)
	return nil
}
