// Package vuepress writes the site configuration in the form the VuePress
// generator loads: config.json, a CommonJS .vuepress/config.js module, or YAML.
package vuepress
