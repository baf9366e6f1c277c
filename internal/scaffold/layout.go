package scaffold

// Layout returns the Interior Designer 3D project tree. The root node has
// an empty name and stands for the project root itself.
func Layout() Node {
	return Dir("",
		frontend(),
		Dir("docs", Files("API.md", "SETUP.md", "FEATURES.md")...),
		File("README.md"),
	)
}

func frontend() Node {
	return Dir("frontend",
		Dir("public",
			File("index.html"),
			File("favicon.ico"),
			Dir("assets",
				Dir("textures",
					Dir("wood"),
					Dir("marble"),
					Dir("fabric"),
					Dir("metal"),
				),
				Dir("models",
					Dir("furniture", Files("chair.glb", "table.glb", "sofa.glb", "bed.glb")...),
					Dir("room"),
				),
				Dir("images"),
			),
		),
		frontendSrc(),
		File(".env"),
		File(".env.example"),
		File(".gitignore"),
		File("package.json"),
		File("tsconfig.json"),
		File("tsconfig.node.json"),
		File("vite.config.ts"),
		File("eslint.config.js"),
		File("README.md"),
	)
}

func frontendSrc() Node {
	return Dir("src",
		Dir("components",
			Dir("3DViewer", Files("Scene.vue", "Camera.vue", "Controls.vue", "Lighting.vue", "Grid.vue", "index.ts")...),
			Dir("Toolbar", Files("ObjectSelector.vue", "MaterialPicker.vue", "ColorPicker.vue", "Tools.vue", "index.ts")...),
			Dir("Sidebar", Files("FurnitureLibrary.vue", "RoomTemplates.vue", "Properties.vue", "Layers.vue", "index.ts")...),
			Dir("Room", Files("Floor.vue", "Walls.vue", "Ceiling.vue", "Door.vue", "index.ts")...),
			Dir("Furniture", Files("FurnitureItem.vue", "Chair.vue", "Table.vue", "Sofa.vue", "Bed.vue", "index.ts")...),
			Dir("UI", Files(
				"BaseButton.vue", "BaseInput.vue", "BaseModal.vue", "BaseCard.vue", "BaseLoader.vue",
				"BaseDropdown.vue", "Header.vue", "Menu.vue", "index.ts",
			)...),
			Dir("Auth", Files("LoginForm.vue", "RegisterForm.vue", "ForgotPassword.vue", "index.ts")...),
			Dir("Export", Files("ScreenshotDialog.vue", "Export3DDialog.vue", "ShareDialog.vue", "index.ts")...),
			Dir("Layout", Files("MainLayout.vue", "AuthLayout.vue", "EditorLayout.vue", "index.ts")...),
		),
		Dir("views", Files(
			"Home.vue", "Editor.vue", "MyDesigns.vue", "Gallery.vue",
			"Profile.vue", "Login.vue", "Register.vue", "NotFound.vue",
		)...),
		Dir("composables", Files(
			"useScene.ts", "useThree.ts", "useObjects.ts", "useDragDrop.ts", "useKeyboard.ts",
			"useAuth.ts", "useAPI.ts", "useCamera.ts", "useRaycaster.ts", "index.ts",
		)...),
		Dir("services",
			Dir("api", Files(
				"config.ts", "auth.service.ts", "design.service.ts",
				"furniture.service.ts", "material.service.ts", "index.ts",
			)...),
			Dir("three", Files(
				"SceneManager.ts", "ModelLoader.ts", "TextureLoader.ts", "Raycaster.ts",
				"Renderer.ts", "LightManager.ts", "index.ts",
			)...),
		),
		Dir("stores", Files(
			"auth.store.ts", "scene.store.ts", "ui.store.ts",
			"design.store.ts", "furniture.store.ts", "index.ts",
		)...),
		Dir("types",
			Dir("models", Files(
				"design.types.ts", "furniture.types.ts", "material.types.ts", "user.types.ts", "scene.types.ts",
			)...),
			Dir("api", Files("request.types.ts", "response.types.ts")...),
			File("three.types.ts"),
			File("index.ts"),
		),
		Dir("utils",
			Dir("helpers", Files("formatters.ts", "validators.ts", "converters.ts")...),
			Dir("three", Files(
				"sceneSetup.ts", "geometryHelpers.ts", "materialHelpers.ts", "exporters.ts", "transformHelpers.ts",
			)...),
			File("constants.ts"),
			File("index.ts"),
		),
		Dir("data",
			Dir("furniture", Files("chairs.ts", "tables.ts", "sofas.ts", "index.ts")...),
			Dir("materials", Files("wood.ts", "marble.ts", "fabric.ts", "index.ts")...),
			Dir("roomTemplates", Files("bedroom.ts", "livingroom.ts", "kitchen.ts", "index.ts")...),
		),
		Dir("router", Files("index.ts", "routes.ts", "guards.ts")...),
		styles(),
		Dir("plugins", Files("pinia.ts", "axios.ts")...),
		File("App.vue"),
		File("main.ts"),
		File("vite-env.d.ts"),
	)
}

func styles() Node {
	return Dir("styles",
		Dir("base", Files("reset.css", "variables.css", "typography.css", "animations.css")...),
		Dir("components", Files(
			"_3d-viewer.css", "toolbar.css", "sidebar.css", "furniture.css", "buttons.css",
			"modals.css", "forms.css", "cards.css", "loaders.css",
		)...),
		Dir("layouts", Files("main-layout.css", "editor-layout.css", "auth-layout.css")...),
		Dir("pages", Files("home.css", "editor.css", "my-designs.css", "gallery.css", "profile.css")...),
		Dir("themes", Files("light.css", "dark.css")...),
		Dir("utilities", Files("spacing.css", "display.css", "flex.css", "grid.css", "colors.css")...),
		Dir("responsive", Files("mobile.css", "tablet.css", "desktop.css")...),
		File("main.css"),
	)
}
